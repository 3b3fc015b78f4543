package templates

import (
	_ "embed"

	"github.com/pluqqy/adaptergen/pkg/models"
)

//go:embed inbound_adapter.cls
var inboundAdapterText string

// InboundAdapterFilename is the conventional download name
const InboundAdapterFilename = "InboundAdapter.cls"

// InboundAdapter returns the SAP InboundAdapter class template
func InboundAdapter() Embedded {
	return Embedded{Name: "InboundAdapter", Text: inboundAdapterText}
}

// InboundAdapterSchema returns the fields of the InboundAdapter template in
// form order. LookUpTableName has no placeholder in the current template
// revision and substitutes nothing.
func InboundAdapterSchema() *models.FieldSchema {
	return models.MustFieldSchema(inboundAdapterFields()...)
}

func inboundAdapterFields() []models.FieldDescriptor {
	return []models.FieldDescriptor{
		// SAP Service
		{Name: "UseJSON", Kind: models.KindBoolean, Label: "Use JSON",
			Help: "Return a JSON object instead of an XML object"},
		{Name: "ConfirmationTimeoutSec", Kind: models.KindNumber, Label: "Confirmation timeout (s)",
			Help: "Timeout for the SAP function handler, 1-600", Default: "30"},
		{Name: "EnableTesting", Kind: models.KindBoolean, Label: "Enable testing",
			Help: "Send test messages for debugging and testing purposes"},
		{Name: "EnableTracing", Kind: models.KindBoolean, Label: "Enable tracing",
			Help: "Print all messages to the log"},
		{Name: "QueueWarningThreshold", Kind: models.KindNumber, Label: "Queue warning threshold",
			Help: "Queued messages before a warning is logged, 1-10000", Default: "1000"},

		// SAP Server Settings
		{Name: "GatewayHost", Kind: models.KindString, Label: "Gateway host",
			Help: "Gateway host address used to connect to the SAP system"},
		{Name: "GatewayService", Kind: models.KindString, Label: "Gateway service",
			Help: "Usually sapgwNN where NN is the instance number", Default: "sapgw00"},
		{Name: "ConnectionCount", Kind: models.KindNumber, Label: "Connection count",
			Help: "Number of server connections to the SAP system", Default: "2"},

		// SAP Client Settings
		{Name: "HostAddress", Kind: models.KindString, Label: "Host address",
			Help: "Application server host of the SAP system"},
		{Name: "ClientID", Kind: models.KindString, Label: "Client ID",
			Help: "SAP client, e.g. 100"},
		{Name: "SystemNumber", Kind: models.KindString, Label: "System number",
			Help: "SAP system number, e.g. 00", Default: "00"},
		{Name: "SAPLanguage", Kind: models.KindString, Label: "SAP language",
			Help: "Logon language", Default: "EN"},
		{Name: "SAPCredentials", Kind: models.KindString, Label: "Credentials ID",
			Help: "ID of the Ens credentials entry holding the SAP user and password"},

		// XML
		{Name: "ImportXMLSchemas", Kind: models.KindBoolean, Label: "Import XML schemas",
			Help: "Save and import new XML schemas automatically (ignored with JSON)"},
		{Name: "XMLSchemaPath", Kind: models.KindString, Label: "XML schema path",
			Help: "Folder for XSD files, reachable by IRIS and the Java server"},
		{Name: "FlattenTablesItems", Kind: models.KindBoolean, Label: "Flatten table items",
			Help: "Flatten tables and remove the item tags"},
		{Name: "XMLNamespace", Kind: models.KindString, Label: "XML namespace",
			Help: "Namespace for generated XML; {functionName} is replaced. Empty generates one"},
		{Name: "CompleteSchema", Kind: models.KindBoolean, Label: "Complete schema",
			Help: "Merge table schemas into one complete schema"},

		{Name: "LookUpTableName", Kind: models.KindString, Label: "Lookup table name"},
	}
}
