package game

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ResourceConfig represents the resource manifest loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  sprites:
//	    images:
//	      - id: player
//	        path: images/player
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Manifest version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup is a collection of images that are loaded together.
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
}

// ImageResource is a single image declaration.
//
// Fields:
//   - ID: Identifier used by the renderer (e.g., "player", "enemy1")
//   - Path: Path relative to base_path; ".png" is appended when no extension is given
type ImageResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// ParseResourceConfig decodes a manifest and checks that image IDs are unique.
func ParseResourceConfig(data []byte) (*ResourceConfig, error) {
	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}

	seen := make(map[string]string)
	for groupName, group := range cfg.Groups {
		for _, img := range group.Images {
			if img.ID == "" {
				return nil, fmt.Errorf("group %s: image with empty id", groupName)
			}
			if prev, dup := seen[img.ID]; dup {
				return nil, fmt.Errorf("duplicate image id %q in groups %s and %s", img.ID, prev, groupName)
			}
			seen[img.ID] = groupName
		}
	}

	return &cfg, nil
}

// ImagePaths returns the full path of every declared image keyed by ID.
func (c *ResourceConfig) ImagePaths() map[string]string {
	paths := make(map[string]string)
	for _, group := range c.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(c.BasePath, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png"
			}
			paths[img.ID] = fullPath
		}
	}
	return paths
}

// buildFullPath joins the base path and a resource's relative path.
//
// Examples:
//
//	buildFullPath("assets", "images/player.png") = "assets/images/player.png"
//	buildFullPath("", "images/player.png")       = "images/player.png"
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
