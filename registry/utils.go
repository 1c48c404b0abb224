package registry

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	protoparser "github.com/yoheimuta/go-protoparser/v4"
	protoparserparser "github.com/yoheimuta/go-protoparser/v4/parser"

	"github.com/anirudhraja/protocore/anypb"
	"github.com/anirudhraja/protocore/schema"
)

// builtinFiles are imports satisfied without a .proto on disk.
var builtinFiles = map[string]*schema.LazyFile{
	"google/protobuf/any.proto": anypb.File_google_protobuf_any_proto,
}

// protoFileEntity is one parsed file awaiting conversion.
type protoFileEntity struct {
	importPath string
	parsed     *protoparserparser.Proto
	imports    []string // import paths, in declaration order
}

// getAllProtoInfo uses DFS to parse importPath and everything it imports.
// Files come back dependencies first, each once.
func (r *Registry) getAllProtoInfo(importPath string) ([]*protoFileEntity, error) {
	visited := make(map[string]struct{}) // to make sure we don't end up in a loop
	onStack := make(map[string]struct{})
	result := make([]*protoFileEntity, 0)

	var dfs func(importPath string) error
	dfs = func(importPath string) error {
		if _, ok := onStack[importPath]; ok {
			return fmt.Errorf("import cycle through %s", importPath)
		}
		if _, ok := visited[importPath]; ok {
			return nil
		}
		visited[importPath] = struct{}{}
		if _, ok := r.pool.File(importPath); ok {
			return nil
		}
		if _, ok := builtinFiles[importPath]; ok {
			return nil
		}
		onStack[importPath] = struct{}{}
		defer delete(onStack, importPath)

		fullPath, err := r.findIfProtoExists(importPath)
		if err != nil {
			return err
		}
		protoBytes, err := os.ReadFile(fullPath)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		parsedBody, err := protoparser.Parse(bytes.NewBuffer(protoBytes), protoparser.WithFilename(importPath))
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", importPath, err)
		}

		entity := &protoFileEntity{importPath: importPath, parsed: parsedBody}
		for _, body := range parsedBody.ProtoBody {
			switch b := body.(type) {
			case *protoparserparser.Import: // resolve relation for each imports
				dep := strings.Trim(b.Location, `"'`)
				entity.imports = append(entity.imports, dep)
				if err := dfs(dep); err != nil {
					return err
				}
			}
		}
		result = append(result, entity)
		return nil
	}

	if err := dfs(importPath); err != nil {
		return nil, err
	}
	return result, nil
}

// findIfProtoExists returns the on-disk location of an import path, searching
// ProtoDirectories in order.
func (r *Registry) findIfProtoExists(protoPath string) (string, error) {
	var (
		fullPath      string
		fullProtoPath string
		err           error
	)
	protoPath = strings.Trim(protoPath, `"`)
	if !strings.HasSuffix(protoPath, ".proto") {
		return "", fmt.Errorf("%s is not a .proto file", protoPath)
	}
	for _, dir := range r.ProtoDirectories {
		fullPath = path.Join(filepath.ToSlash(dir), protoPath)
		// Check if the path exists
		_, err = os.Stat(fullPath)
		if err == nil {
			fullProtoPath = fullPath
			break
		}
	}
	if fullProtoPath == "" {
		if err == nil {
			err = os.ErrNotExist
		}
		return "", fmt.Errorf("path does not exist: %s: %w", protoPath, err)
	}
	return fullProtoPath, nil
}

// importPathFor maps a file on disk to the path other files import it by:
// relative to the first proto directory containing it, or its base name.
func (r *Registry) importPathFor(file string) string {
	abs, err := filepath.Abs(file)
	if err != nil {
		abs = file
	}
	for _, dir := range r.ProtoDirectories {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			continue
		}
		rel, err := filepath.Rel(absDir, abs)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return filepath.ToSlash(rel)
		}
	}
	r.ProtoDirectories = append(r.ProtoDirectories, filepath.Dir(file))
	return filepath.Base(file)
}
