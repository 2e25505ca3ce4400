// Package apiconfig builds the huma configuration shared by the server and handler tests.
package apiconfig

import (
	"path"
	"reflect"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"travelplanner/internal/app/server/api/http/httperr"
)

const (
	Title   = "Travel Planner API"
	Version = "1.0.0"
)

// New returns huma defaults with the bearer scheme declared and without the
// $schema links, so bodies keep the plain shape clients expect.
func New() huma.Config {
	httperr.Install()

	cfg := huma.DefaultConfig(Title, Version)
	cfg.CreateHooks = nil
	cfg.Transformers = nil
	cfg.Components.Schemas = huma.NewMapRegistry("#/components/schemas/", SchemaName)
	cfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
	}
	return cfg
}

// SchemaName prefixes huma's default name with the package of the type:
// checklist.Item and packing.Item become ChecklistItem and PackingItem.
// Names already starting with the package (budget.Budget) stay as is.
func SchemaName(t reflect.Type, hint string) string {
	name := huma.DefaultSchemaNamer(t, hint)

	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice || t.Kind() == reflect.Array || t.Kind() == reflect.Map {
		t = t.Elem()
	}
	pkg := path.Base(t.PkgPath())
	if t.Name() == "" || pkg == "." || pkg == "/" {
		return name
	}
	if strings.HasPrefix(strings.ToLower(name), pkg) {
		return name
	}
	return strings.ToUpper(pkg[:1]) + pkg[1:] + name
}
