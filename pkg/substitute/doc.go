// Package substitute renders a template by replacing literal placeholder
// tokens of the form +#Name#+ with typed field values.
//
// There is no template language: each declared field is converted by kind
// and every occurrence of its token is replaced verbatim, in schema
// declaration order. Tokens without a matching field are left untouched and
// can be listed with Unresolved.
package substitute
