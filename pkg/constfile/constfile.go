/*
This file is part of go-fsioctl.

Go-fsioctl is free software: you can redistribute it and/or modify it under the terms of the
GNU Lesser General Public License as published by the Free Software Foundation, either
version 3 of the License, or (at your option) any later version.

Go-fsioctl is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
See the GNU Lesser General Public License for more details.

You should have received a copy of the GNU Lesser General Public License along with go-fsioctl.
If not, see <https://www.gnu.org/licenses/>.
*/

// Package constfile renders generated Go source files containing typed
// constant declarations, and writes them to a filesystem.
package constfile

import (
	"fmt"
	"go/format"
	"os"
	"strings"

	"github.com/blang/vfs"
)

// Decl describes a single constant to export: its name, the Go type it is
// declared with, and the value resolved from the host environment.
type Decl struct {
	Name  string
	Type  string
	Value uint64
}

// Header returns the provenance line every generated file begins with.
func Header(source string) string {
	return fmt.Sprintf("// Generated from %s -- DO NOT EDIT DIRECTLY!", source)
}

// Render produces the complete contents of a generated constants file: the
// provenance header naming source, the package clause for pkgName, and one
// declaration per entry of decls, in order, with values in lowercase hex.
// The result is passed through go/format before being returned, so a
// malformed declaration fails rendering instead of producing a file the
// consumer cannot parse.
func Render(source, pkgName string, decls []Decl) ([]byte, error) {
	seen := make(map[string]bool, len(decls))
	for _, d := range decls {
		if d.Name == "" {
			return nil, fmt.Errorf("constant with value 0x%x has no name", d.Value)
		}
		if d.Type == "" {
			return nil, fmt.Errorf("constant %s has no type", d.Name)
		}
		if seen[d.Name] {
			return nil, fmt.Errorf("duplicate constant %s", d.Name)
		}
		seen[d.Name] = true
	}
	var sb strings.Builder
	sb.WriteString(Header(source))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("package %s\n\n", pkgName))
	for _, d := range decls {
		sb.WriteString(fmt.Sprintf("const %s %s = 0x%x\n", d.Name, d.Type, d.Value))
	}
	src, err := format.Source([]byte(sb.String()))
	if err != nil {
		return nil, fmt.Errorf("rendered constants do not parse: %w", err)
	}
	return src, nil
}

// WriteFile writes data to path on fs in a single write, creating the
// file if it does not exist and truncating it if it does.
func WriteFile(fs vfs.Filesystem, path string, data []byte) error {
	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
