package validate

import (
	"os"
	"path/filepath"
	"sort"
)

// CustomDataDir is the project subdirectory holding custom-data module
// schemas, one module per subdirectory.
const CustomDataDir = "custom_data"

// schemaFileNames are the recognized schema filenames inside a module
// directory, in lookup order.
var schemaFileNames = []string{"schema.yaml", "schema.yml"}

// ModuleSchemaFile is one discovered custom-data module schema. Err records
// a read failure; the validator turns it into a single error naming the
// file rather than aborting the run.
type ModuleSchemaFile struct {
	Dir  string
	Path string
	Data []byte
	Err  error
}

// ProjectLayout is the engine's view of the extension project directory.
// The structural and custom-data validators are pure functions of the
// manifest plus this interface, which keeps them testable without a real
// directory tree.
type ProjectLayout interface {
	// DirExists reports whether a directory with the given name exists
	// directly under the project root.
	DirExists(name string) bool

	// FileExists reports whether a file with the given name exists
	// directly under the project root.
	FileExists(name string) bool

	// ModuleSchemas returns the discovered custom-data module schemas,
	// sorted by module directory name. Nil when no module root exists.
	ModuleSchemas() []ModuleSchemaFile
}

// dirLayout is the os-backed ProjectLayout.
type dirLayout struct {
	root string
}

// DirLayout returns a ProjectLayout reading the given project root.
func DirLayout(root string) ProjectLayout {
	return &dirLayout{root: root}
}

func (d *dirLayout) DirExists(name string) bool {
	info, err := os.Stat(filepath.Join(d.root, name))
	return err == nil && info.IsDir()
}

func (d *dirLayout) FileExists(name string) bool {
	info, err := os.Stat(filepath.Join(d.root, name))
	return err == nil && !info.IsDir()
}

func (d *dirLayout) ModuleSchemas() []ModuleSchemaFile {
	moduleRoot := filepath.Join(d.root, CustomDataDir)
	entries, err := os.ReadDir(moduleRoot)
	if err != nil {
		return nil
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	sort.Strings(dirs)

	var schemas []ModuleSchemaFile
	for _, dir := range dirs {
		schema, ok := readModuleSchema(filepath.Join(moduleRoot, dir), dir)
		if ok {
			schemas = append(schemas, schema)
		}
	}
	return schemas
}

// readModuleSchema loads the schema file of one module directory. A module
// directory without any schema file is skipped entirely; an unreadable
// schema file is reported through Err.
func readModuleSchema(moduleDir, name string) (ModuleSchemaFile, bool) {
	for _, fileName := range schemaFileNames {
		path := filepath.Join(moduleDir, fileName)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		data, err := os.ReadFile(path)
		return ModuleSchemaFile{Dir: name, Path: path, Data: data, Err: err}, true
	}
	return ModuleSchemaFile{}, false
}
