package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pluqqy/adaptergen/internal/cli"
	"github.com/pluqqy/adaptergen/pkg/files"
	"github.com/pluqqy/adaptergen/pkg/models"
	"github.com/pluqqy/adaptergen/pkg/prompt"
	"github.com/pluqqy/adaptergen/pkg/templates"
)

const testTemplate = "Flag=+#Flag#+;N=+#N#+;S=\"+#S#+\";X=+#Missing#+;"

const testSchema = `fields:
  - name: Flag
    kind: boolean
  - name: N
    kind: number
    default: "30"
  - name: S
    kind: string
`

// setupTest moves into a temp directory, silences status output and
// returns the buffers that receive it
func setupTest(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(oldWd) })
	require.NoError(t, os.Chdir(tempDir))

	status := &bytes.Buffer{}
	warnings := &bytes.Buffer{}
	cli.SetStreams(status, warnings, strings.NewReader(""))
	cli.SetGlobalFlags(false, true, false)
	t.Cleanup(func() {
		cli.SetStreams(os.Stdout, os.Stderr, os.Stdin)
		cli.SetGlobalFlags(false, false, false)
	})

	return status, warnings
}

// useTestTemplate points the project settings at a small template and schema
func useTestTemplate(t *testing.T) {
	t.Helper()

	require.NoError(t, os.WriteFile("adapter.cls", []byte(testTemplate), 0644))
	require.NoError(t, os.WriteFile("schema.yaml", []byte(testSchema), 0644))

	settings := models.DefaultSettings()
	settings.Template.Path = "adapter.cls"
	settings.Template.SchemaPath = "schema.yaml"
	require.NoError(t, files.WriteSettings(settings))
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	cmd.SetContext(context.Background())
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "defaults",
			args: nil,
			want: "Flag=0;N=30;S=\"\";X=+#Missing#+;",
		},
		{
			name: "set assignments",
			args: []string{"--set", "Flag=true", "--set", "N=42", "--set", "S=host"},
			want: "Flag=1;N=42;S=\"host\";X=+#Missing#+;",
		},
		{
			name: "non-integer renders NaN",
			args: []string{"-s", "N=abc"},
			want: "Flag=0;N=NaN;S=\"\";X=+#Missing#+;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTest(t)
			useTestTemplate(t)

			out, err := execute(t, NewRenderCommand(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRenderCommandValuesFile(t *testing.T) {
	_, warnings := setupTest(t)
	useTestTemplate(t)

	values := "Flag: true\nN: 007\nS: from-file\nUnknown: x\n"
	require.NoError(t, os.WriteFile("values.yaml", []byte(values), 0644))

	out, err := execute(t, NewRenderCommand(), "--values", "values.yaml", "--set", "S=override")
	require.NoError(t, err)
	assert.Equal(t, "Flag=1;N=7;S=\"override\";X=+#Missing#+;", out)
	assert.Contains(t, warnings.String(), "Unknown")
	assert.Contains(t, warnings.String(), "+#Missing#+")
}

func TestRenderCommandToFile(t *testing.T) {
	status, _ := setupTest(t)
	useTestTemplate(t)

	out, err := execute(t, NewRenderCommand(), "--set", "N=5", "--file", filepath.Join("out", "Adapter.cls"))
	require.NoError(t, err)
	assert.Empty(t, out)

	content, err := os.ReadFile(filepath.Join("out", "Adapter.cls"))
	require.NoError(t, err)
	assert.Equal(t, "Flag=0;N=5;S=\"\";X=+#Missing#+;", string(content))
	assert.Contains(t, status.String(), "Rendered")
}

func TestRenderCommandStrict(t *testing.T) {
	_, warnings := setupTest(t)
	useTestTemplate(t)

	out, err := execute(t, NewRenderCommand(), "--set", "N=two", "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid field values")
	assert.Contains(t, warnings.String(), "rendered as NaN")
	assert.True(t, strings.HasPrefix(out, "Flag=0;N=NaN;S=\"\";X=+#Missing#+;"), "rendered output is printed before failing")
}

func TestRenderCommandStrictToFile(t *testing.T) {
	setupTest(t)
	useTestTemplate(t)

	out, err := execute(t, NewRenderCommand(), "--set", "N=two", "--strict", "--file", "Adapter.cls")
	require.Error(t, err)
	assert.NotContains(t, out, "N=NaN")
	assert.NoFileExists(t, "Adapter.cls")
}

func TestRenderCommandUnknownField(t *testing.T) {
	setupTest(t)
	useTestTemplate(t)

	_, err := execute(t, NewRenderCommand(), "--set", "Nope=1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nope")
}

func TestRenderCommandEmbeddedTemplate(t *testing.T) {
	setupTest(t)

	out, err := execute(t, NewRenderCommand(), "--set", "GatewayHost=sapgw42", "--set", "UseJSON=yes")
	require.NoError(t, err)
	assert.Contains(t, out, `InitialExpression = "sapgw42"`)
	assert.Contains(t, out, "Property UseJSON As %Boolean [ InitialExpression = 1 ];")
	assert.NotContains(t, out, "+#GatewayHost#+")
}

func TestDownloadCommand(t *testing.T) {
	status, _ := setupTest(t)
	useTestTemplate(t)

	_, err := execute(t, NewDownloadCommand(), "--set", "S=abc")
	require.NoError(t, err)

	content, err := os.ReadFile(templates.InboundAdapterFilename)
	require.NoError(t, err)
	assert.Equal(t, "Flag=0;N=30;S=\"abc\";X=+#Missing#+;", string(content))
	assert.Contains(t, status.String(), "Class saved to")
}

func TestDownloadCommandCustomName(t *testing.T) {
	setupTest(t)
	useTestTemplate(t)

	_, err := execute(t, NewDownloadCommand(), "Other.cls")
	require.NoError(t, err)
	assert.FileExists(t, "Other.cls")

	_, err = execute(t, NewDownloadCommand(), "../escape.cls")
	assert.Error(t, err)
}

func TestDownloadCommandOverwrite(t *testing.T) {
	status, _ := setupTest(t)
	useTestTemplate(t)

	require.NoError(t, os.WriteFile("Keep.cls", []byte("original"), 0644))

	cli.SetStreams(nil, nil, strings.NewReader("n\n"))
	_, err := execute(t, NewDownloadCommand(), "Keep.cls")
	require.NoError(t, err)
	content, _ := os.ReadFile("Keep.cls")
	assert.Equal(t, "original", string(content))
	assert.Contains(t, status.String(), "cancelled")

	cli.SetGlobalFlags(false, true, true)
	_, err = execute(t, NewDownloadCommand(), "Keep.cls")
	require.NoError(t, err)
	content, _ = os.ReadFile("Keep.cls")
	assert.Equal(t, "Flag=0;N=30;S=\"\";X=+#Missing#+;", string(content))
}

func TestDownloadCommandDataURI(t *testing.T) {
	setupTest(t)
	useTestTemplate(t)

	out, err := execute(t, NewDownloadCommand(), "--data-uri", "--set", "S=a b")
	require.NoError(t, err)

	uri := strings.TrimSpace(out)
	require.True(t, strings.HasPrefix(uri, "data:text/plain;charset=utf-8,"))
	decoded, err := url.PathUnescape(strings.TrimPrefix(uri, "data:text/plain;charset=utf-8,"))
	require.NoError(t, err)
	assert.Equal(t, "Flag=0;N=30;S=\"a b\";X=+#Missing#+;", decoded)
	assert.NoFileExists(t, templates.InboundAdapterFilename)
}

func TestFieldsCommand(t *testing.T) {
	setupTest(t)
	useTestTemplate(t)

	out, err := execute(t, NewFieldsCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "Flag")

	out, err = execute(t, NewFieldsCommand(), "-o", "json")
	require.NoError(t, err)
	var fields []models.FieldDescriptor
	require.NoError(t, json.Unmarshal([]byte(out), &fields))
	require.Len(t, fields, 3)
	assert.Equal(t, "N", fields[1].Name)
	assert.Equal(t, models.KindNumber, fields[1].Kind)
	assert.Equal(t, "30", fields[1].Default)

	_, err = execute(t, NewFieldsCommand(), "-o", "xml")
	assert.Error(t, err)
}

func TestFieldsCommandEmbeddedSchema(t *testing.T) {
	setupTest(t)

	out, err := execute(t, NewFieldsCommand(), "-o", "yaml")
	require.NoError(t, err)

	var fields []models.FieldDescriptor
	require.NoError(t, yaml.Unmarshal([]byte(out), &fields))
	assert.Len(t, fields, 19)
	assert.Equal(t, "UseJSON", fields[0].Name)
	assert.Equal(t, "LookUpTableName", fields[18].Name)
}

func TestTokensCommand(t *testing.T) {
	setupTest(t)
	useTestTemplate(t)

	out, err := execute(t, NewTokensCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "+#Missing#+")
	assert.Contains(t, out, "unresolved")
	assert.Contains(t, out, "4 placeholder(s), 1 unresolved")

	out, err = execute(t, NewTokensCommand(), "-o", "json")
	require.NoError(t, err)
	var reports []TokenReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 4)
	assert.Equal(t, TokenReport{Token: "+#Flag#+", Field: "Flag", Kind: "boolean", Resolved: true}, reports[0])
	assert.False(t, reports[3].Resolved)
}

func TestTokensCommandUnusedFields(t *testing.T) {
	setupTest(t)

	out, err := execute(t, NewTokensCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "0 unresolved")
	assert.Contains(t, out, "LookUpTableName")
}

// scriptedDriver answers prompts from fixed maps and falls back to defaults
type scriptedDriver struct {
	inputs   map[string]string
	confirms map[string]bool
	action   string
	abort    bool
}

func (d *scriptedDriver) Input(ctx context.Context, cfg prompt.InputConfig) (string, error) {
	if d.abort {
		return "", prompt.ErrAborted
	}
	if v, ok := d.inputs[cfg.Message]; ok {
		return v, nil
	}
	return cfg.Default, nil
}

func (d *scriptedDriver) Password(ctx context.Context, cfg prompt.InputConfig) (string, error) {
	return d.Input(ctx, cfg)
}

func (d *scriptedDriver) Confirm(ctx context.Context, cfg prompt.ConfirmConfig) (bool, error) {
	if v, ok := d.confirms[cfg.Message]; ok {
		return v, nil
	}
	return cfg.Default, nil
}

func (d *scriptedDriver) Select(ctx context.Context, cfg prompt.SelectConfig) (string, error) {
	return d.action, nil
}

func TestPromptCommandPrint(t *testing.T) {
	setupTest(t)
	useTestTemplate(t)

	d := &scriptedDriver{
		inputs:   map[string]string{"S": "typed"},
		confirms: map[string]bool{"Flag": true},
		action:   prompt.ActionPrint,
	}

	out, err := execute(t, newPromptCommand(d), "--set", "N=12")
	require.NoError(t, err)
	assert.Equal(t, "Flag=1;N=12;S=\"typed\";X=+#Missing#+;", out)
}

func TestPromptCommandDownload(t *testing.T) {
	status, _ := setupTest(t)
	useTestTemplate(t)

	d := &scriptedDriver{action: prompt.ActionDownload}

	_, err := execute(t, newPromptCommand(d))
	require.NoError(t, err)
	assert.FileExists(t, templates.InboundAdapterFilename)
	assert.Contains(t, status.String(), "Import the file")
}

func TestPromptCommandAborted(t *testing.T) {
	status, _ := setupTest(t)
	useTestTemplate(t)

	out, err := execute(t, newPromptCommand(&scriptedDriver{abort: true}))
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, status.String(), "Aborted")
	assert.NoFileExists(t, templates.InboundAdapterFilename)
}

func TestPromptCommandDownloadAsksBeforeOverwrite(t *testing.T) {
	status, _ := setupTest(t)
	useTestTemplate(t)

	require.NoError(t, os.WriteFile(templates.InboundAdapterFilename, []byte("original"), 0644))
	cli.SetStreams(nil, nil, strings.NewReader("n\n"))

	_, err := execute(t, newPromptCommand(&scriptedDriver{action: prompt.ActionDownload}))
	require.NoError(t, err)
	content, _ := os.ReadFile(templates.InboundAdapterFilename)
	assert.Equal(t, "original", string(content))
	assert.Contains(t, status.String(), "cancelled")

	cli.SetStreams(nil, nil, strings.NewReader("y\n"))
	_, err = execute(t, newPromptCommand(&scriptedDriver{action: prompt.ActionDownload}))
	require.NoError(t, err)
	content, _ = os.ReadFile(templates.InboundAdapterFilename)
	assert.Equal(t, "Flag=0;N=30;S=\"\";X=+#Missing#+;", string(content))
}
