package domain

import (
	"path"
	"strings"
)

// Category is the classification bucket for a dependency node, derived from
// its file-extension suffix.
type Category uint8

const (
	// CategoryPrefab is the corpus's native composite-asset format.
	CategoryPrefab Category = iota
	// CategoryMedia covers image assets.
	CategoryMedia
	// CategoryCode covers source, shader and module-definition assets.
	CategoryCode
	// CategoryOther covers everything else.
	CategoryOther
)

// Categories returns all categories in fixed display order.
func Categories() []Category {
	return []Category{CategoryPrefab, CategoryMedia, CategoryCode, CategoryOther}
}

// String returns the display name of the category.
func (c Category) String() string {
	switch c {
	case CategoryPrefab:
		return "Prefabs"
	case CategoryMedia:
		return "Media"
	case CategoryCode:
		return "Code"
	default:
		return "Other"
	}
}

var mediaExtensions = map[string]struct{}{
	"png": {}, "jpg": {}, "jpeg": {}, "tga": {}, "tif": {},
	"tiff": {}, "gif": {}, "bmp": {}, "psd": {}, "exr": {}, "hdr": {},
}

var codeExtensions = map[string]struct{}{
	"cs": {}, "js": {}, "shader": {}, "asmdef": {},
	"cginc": {}, "hlsl": {}, "glslinc": {}, "template": {},
}

// PrefabExtension is the extension of composite asset files, without the dot.
const PrefabExtension = "prefab"

// Classify maps a node identifier to its category by file extension,
// case-insensitively. It is total: unknown and missing extensions classify
// as CategoryOther.
func Classify(node string) Category {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(node), "."))
	switch {
	case ext == PrefabExtension:
		return CategoryPrefab
	default:
		if _, ok := mediaExtensions[ext]; ok {
			return CategoryMedia
		}
		if _, ok := codeExtensions[ext]; ok {
			return CategoryCode
		}
		return CategoryOther
	}
}
