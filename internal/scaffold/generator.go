package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	clierrors "github.com/ariel-frischer/pkgctl/internal/errors"
)

// ManifestFileName is the package manifest written at the package root.
const ManifestFileName = "Package.swift"

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Generator writes one package skeleton into DestDir.
type Generator struct {
	Name    string
	Type    PackageType
	Options Options
	DestDir string
	FS      FileSystem
	// Progress receives one human-readable line per step. May be nil.
	Progress func(string)
}

type templateData struct {
	Name   string
	Module string
}

type plannedFile struct {
	rel      string
	template string
}

// New validates the request and returns a ready Generator. An empty name
// defaults to the base name of destDir.
func New(name string, packageType PackageType, opts Options, destDir string, fsys FileSystem) (*Generator, error) {
	if err := Validate(packageType, opts); err != nil {
		return nil, err
	}
	if name == "" {
		name = filepath.Base(destDir)
	}
	if !validName(name) {
		return nil, clierrors.InvalidPackageName(name)
	}
	return &Generator{
		Name:    name,
		Type:    packageType,
		Options: opts,
		DestDir: destDir,
		FS:      fsys,
	}, nil
}

// Generate renders every file first and writes them only when all templates
// succeeded. An existing manifest in DestDir aborts before any write.
func (g *Generator) Generate() error {
	manifest := filepath.Join(g.DestDir, ManifestFileName)
	if g.FS.Exists(manifest) {
		return clierrors.ManifestExists(manifest)
	}

	data := templateData{Name: g.Name, Module: ModuleName(g.Name)}
	files := g.plan(data.Module)
	rendered := make([][]byte, len(files))
	for i, f := range files {
		var buf bytes.Buffer
		if err := templates.ExecuteTemplate(&buf, f.template, data); err != nil {
			return fmt.Errorf("rendering %s: %w", f.rel, err)
		}
		rendered[i] = buf.Bytes()
	}

	g.progress(fmt.Sprintf("Creating %s package: %s", g.Type, g.Name))
	for i, f := range files {
		g.progress("Creating " + filepath.ToSlash(f.rel))
		path := filepath.Join(g.DestDir, f.rel)
		if err := g.FS.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", f.rel, err)
		}
		if err := g.FS.WriteFile(path, rendered[i], 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", f.rel, err)
		}
	}
	return nil
}

func (g *Generator) progress(msg string) {
	if g.Progress != nil {
		g.Progress(msg)
	}
}

// plan lists the files of the package type, manifest first.
func (g *Generator) plan(module string) []plannedFile {
	manifest := func(tmpl string) plannedFile {
		return plannedFile{rel: ManifestFileName, template: tmpl}
	}
	gitignore := plannedFile{rel: ".gitignore", template: "gitignore.tmpl"}

	switch g.Type {
	case Library:
		files := []plannedFile{
			manifest("library.package.tmpl"),
			gitignore,
			{rel: filepath.Join("Sources", module, module+".swift"), template: "library.source.tmpl"},
			{rel: filepath.Join("Tests", module+"Tests", module+"Tests.swift"), template: "library.tests.tmpl"},
		}
		if g.Options.WithDocs {
			files[0] = manifest("library_docs.package.tmpl")
			files = append(files, plannedFile{
				rel:      filepath.Join("Sources", module, module+".docc", module+".md"),
				template: "docs.md.tmpl",
			})
		}
		return files
	case Executable:
		return []plannedFile{
			manifest("executable.package.tmpl"),
			gitignore,
			{rel: filepath.Join("Sources", module, "main.swift"), template: "executable.main.tmpl"},
		}
	case Tool:
		return []plannedFile{
			manifest("tool.package.tmpl"),
			gitignore,
			{rel: filepath.Join("Sources", module, module+".swift"), template: "tool.source.tmpl"},
		}
	case BuildToolPlugin:
		return []plannedFile{
			manifest("buildtoolplugin.package.tmpl"),
			gitignore,
			{rel: filepath.Join("Plugins", module, "plugin.swift"), template: "buildtoolplugin.source.tmpl"},
		}
	case CommandPlugin:
		return []plannedFile{
			manifest("commandplugin.package.tmpl"),
			gitignore,
			{rel: filepath.Join("Plugins", module, "plugin.swift"), template: "commandplugin.source.tmpl"},
		}
	case Macro:
		return []plannedFile{
			manifest("macro.package.tmpl"),
			gitignore,
			{rel: filepath.Join("Sources", module, module+".swift"), template: "macro.interface.tmpl"},
			{rel: filepath.Join("Sources", module+"Macros", module+"Macro.swift"), template: "macro.impl.tmpl"},
			{rel: filepath.Join("Sources", module+"Client", "main.swift"), template: "macro.client.tmpl"},
			{rel: filepath.Join("Tests", module+"Tests", module+"Tests.swift"), template: "macro.tests.tmpl"},
		}
	default:
		return []plannedFile{manifest("empty.package.tmpl"), gitignore}
	}
}

// ModuleName turns a package name into a valid module identifier: invalid
// characters become underscores and a leading digit gets an underscore prefix.
func ModuleName(name string) string {
	var sb strings.Builder
	for i, r := range name {
		switch {
		case r == '_' || (r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))):
			if i == 0 && unicode.IsDigit(r) {
				sb.WriteRune('_')
			}
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	return sb.String()
}

func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
