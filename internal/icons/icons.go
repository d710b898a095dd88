// Package icons maps file paths to Nerd Font glyphs and display colors.
package icons

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Icon is a glyph plus the color it is conventionally drawn in.
type Icon struct {
	Glyph string
	Color lipgloss.Color
}

var (
	defaultFile = Icon{Glyph: "", Color: lipgloss.Color("252")} //
	defaultDir  = Icon{Glyph: "", Color: lipgloss.Color("33")}  //
)

// Well-known file names take precedence over extensions.
var byName = map[string]Icon{
	"makefile":       {Glyph: "", Color: lipgloss.Color("160")},
	"dockerfile":     {Glyph: "", Color: lipgloss.Color("39")},
	"license":        {Glyph: "", Color: lipgloss.Color("179")},
	"readme.md":      {Glyph: "", Color: lipgloss.Color("39")},
	".gitignore":     {Glyph: "", Color: lipgloss.Color("166")},
	".gitattributes": {Glyph: "", Color: lipgloss.Color("166")},
	"go.mod":         {Glyph: "", Color: lipgloss.Color("45")},
	"go.sum":         {Glyph: "", Color: lipgloss.Color("45")},
	"cargo.toml":     {Glyph: "", Color: lipgloss.Color("166")},
	"package.json":   {Glyph: "", Color: lipgloss.Color("70")},
}

var byExt = map[string]Icon{
	".go":   {Glyph: "", Color: lipgloss.Color("45")},
	".rs":   {Glyph: "", Color: lipgloss.Color("166")},
	".py":   {Glyph: "", Color: lipgloss.Color("33")},
	".js":   {Glyph: "", Color: lipgloss.Color("185")},
	".ts":   {Glyph: "", Color: lipgloss.Color("39")},
	".jsx":  {Glyph: "", Color: lipgloss.Color("45")},
	".tsx":  {Glyph: "", Color: lipgloss.Color("45")},
	".c":    {Glyph: "", Color: lipgloss.Color("39")},
	".h":    {Glyph: "", Color: lipgloss.Color("140")},
	".cpp":  {Glyph: "", Color: lipgloss.Color("39")},
	".rb":   {Glyph: "", Color: lipgloss.Color("160")},
	".java": {Glyph: "", Color: lipgloss.Color("166")},
	".sh":   {Glyph: "", Color: lipgloss.Color("70")},
	".md":   {Glyph: "", Color: lipgloss.Color("252")},
	".json": {Glyph: "", Color: lipgloss.Color("185")},
	".yaml": {Glyph: "", Color: lipgloss.Color("160")},
	".yml":  {Glyph: "", Color: lipgloss.Color("160")},
	".toml": {Glyph: "", Color: lipgloss.Color("166")},
	".html": {Glyph: "", Color: lipgloss.Color("166")},
	".css":  {Glyph: "", Color: lipgloss.Color("39")},
	".lock": {Glyph: "", Color: lipgloss.Color("244")},
	".sql":  {Glyph: "", Color: lipgloss.Color("188")},
	".zip":  {Glyph: "", Color: lipgloss.Color("179")},
	".gz":   {Glyph: "", Color: lipgloss.Color("179")},
	".tar":  {Glyph: "", Color: lipgloss.Color("179")},
	".png":  {Glyph: "", Color: lipgloss.Color("140")},
	".jpg":  {Glyph: "", Color: lipgloss.Color("140")},
	".jpeg": {Glyph: "", Color: lipgloss.Color("140")},
	".gif":  {Glyph: "", Color: lipgloss.Color("140")},
	".svg":  {Glyph: "", Color: lipgloss.Color("179")},
	".pdf":  {Glyph: "", Color: lipgloss.Color("160")},
	".txt":  {Glyph: "", Color: lipgloss.Color("252")},
	".vim":  {Glyph: "", Color: lipgloss.Color("70")},
}

// ForPath returns the icon for a path. Directories share one glyph;
// files match by well-known name first, then by extension.
func ForPath(path string, isDir bool) Icon {
	if isDir {
		return defaultDir
	}
	name := strings.ToLower(filepath.Base(path))
	if icon, ok := byName[name]; ok {
		return icon
	}
	if icon, ok := byExt[filepath.Ext(name)]; ok {
		return icon
	}
	return defaultFile
}
