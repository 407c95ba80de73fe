package xcodeproj

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"howett.net/plist"
)

// FileReference is an entry in the manifest associating a relative path
// with the project's file tree.
type FileReference struct {
	ID   string
	Path string
	Name string
}

// Project is the decoded object graph of a project.pbxproj manifest.
//
// The graph itself is owned by the plist codec; Project only walks and
// mutates it through the two operations the registrar needs. It never
// deletes references.
type Project struct {
	raw     map[string]interface{}
	objects map[string]interface{}
	format  int
}

// NewProject creates a minimal in-memory project graph with an empty main
// group. Used by tests and for seeding fresh manifests.
func NewProject() *Project {
	projectID := "D0B2F4A1C3E5D7B9A1C3E5D7"
	mainGroupID := "D0B2F4A1C3E5D7B9A1C3E5D8"

	objects := map[string]interface{}{
		projectID: map[string]interface{}{
			"isa":       "PBXProject",
			"mainGroup": mainGroupID,
		},
		mainGroupID: map[string]interface{}{
			"isa":        "PBXGroup",
			"children":   []interface{}{},
			"sourceTree": "<group>",
		},
	}

	return &Project{
		raw: map[string]interface{}{
			"archiveVersion": "1",
			"objectVersion":  "56",
			"objects":        objects,
			"rootObject":     projectID,
		},
		objects: objects,
		format:  plist.OpenStepFormat,
	}
}

// newProject validates the decoded plist graph and wraps it.
func newProject(raw map[string]interface{}, format int) (*Project, error) {
	objects, ok := raw["objects"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: missing objects table", ErrManifestParse)
	}

	p := &Project{raw: raw, objects: objects, format: format}
	if _, err := p.mainGroup(); err != nil {
		return nil, err
	}

	return p, nil
}

// FindFileReference looks up a file reference by normalized relative path.
func (p *Project) FindFileReference(filePath string) (*FileReference, bool) {
	want := normalizePath(filePath)

	for id, obj := range p.objects {
		ref, ok := obj.(map[string]interface{})
		if !ok || ref["isa"] != "PBXFileReference" {
			continue
		}

		refPath, _ := ref["path"].(string)
		if normalizePath(refPath) != want {
			continue
		}

		name, _ := ref["name"].(string)
		return &FileReference{ID: id, Path: refPath, Name: name}, true
	}

	return nil, false
}

// FileReferences returns all file references in the manifest, sorted by path.
func (p *Project) FileReferences() []FileReference {
	var refs []FileReference
	for id, obj := range p.objects {
		ref, ok := obj.(map[string]interface{})
		if !ok || ref["isa"] != "PBXFileReference" {
			continue
		}

		refPath, _ := ref["path"].(string)
		name, _ := ref["name"].(string)
		refs = append(refs, FileReference{ID: id, Path: refPath, Name: name})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Path < refs[j].Path })
	return refs
}

// AddFileReference inserts a new file reference under parentGroup, or under
// the project's main group when parentGroup is empty. The caller is expected
// to have checked for an existing reference first; AddFileReference does not
// deduplicate.
func (p *Project) AddFileReference(filePath, parentGroup string) (*FileReference, error) {
	group, err := p.resolveGroup(parentGroup)
	if err != nil {
		return nil, err
	}

	id, err := generateObjectID()
	if err != nil {
		return nil, err
	}

	cleaned := normalizePath(filePath)
	ref := map[string]interface{}{
		"isa":        "PBXFileReference",
		"path":       cleaned,
		"sourceTree": "<group>",
	}
	if fileType := fileTypeForPath(cleaned); fileType != "" {
		ref["lastKnownFileType"] = fileType
	}

	name := path.Base(cleaned)
	if name != cleaned {
		ref["name"] = name
	}

	p.objects[id] = ref

	children, _ := group["children"].([]interface{})
	group["children"] = append(children, id)

	return &FileReference{ID: id, Path: cleaned, Name: name}, nil
}

// resolveGroup finds the PBXGroup named by parentGroup, or the main group
// when parentGroup is empty.
func (p *Project) resolveGroup(parentGroup string) (map[string]interface{}, error) {
	if parentGroup == "" {
		return p.mainGroup()
	}

	for _, obj := range p.objects {
		group, ok := obj.(map[string]interface{})
		if !ok || group["isa"] != "PBXGroup" {
			continue
		}

		name, _ := group["name"].(string)
		groupPath, _ := group["path"].(string)
		if name == parentGroup || groupPath == parentGroup {
			return group, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, parentGroup)
}

// mainGroup returns the group the project hangs its file tree off.
func (p *Project) mainGroup() (map[string]interface{}, error) {
	rootID, ok := p.raw["rootObject"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: missing rootObject", ErrManifestParse)
	}

	root, ok := p.objects[rootID].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: rootObject %s not in objects table", ErrManifestParse, rootID)
	}

	mainGroupID, ok := root["mainGroup"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: project object has no mainGroup", ErrManifestParse)
	}

	group, ok := p.objects[mainGroupID].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: mainGroup %s not in objects table", ErrManifestParse, mainGroupID)
	}

	return group, nil
}

// normalizePath cleans a manifest-relative path so lookups are stable
// across equivalent spellings ("./App/Foo.swift" vs "App/Foo.swift").
func normalizePath(filePath string) string {
	return path.Clean(filepath.ToSlash(filePath))
}

// fileTypeForPath maps a file extension to Xcode's lastKnownFileType value.
func fileTypeForPath(filePath string) string {
	switch strings.ToLower(path.Ext(filePath)) {
	case ".swift":
		return "sourcecode.swift"
	case ".m":
		return "sourcecode.c.objc"
	case ".h":
		return "sourcecode.c.h"
	case ".c":
		return "sourcecode.c.c"
	case ".cpp", ".cc":
		return "sourcecode.cpp.cpp"
	case ".json":
		return "text.json"
	case ".plist":
		return "text.plist.xml"
	case ".storyboard":
		return "file.storyboard"
	case ".xcassets":
		return "folder.assetcatalog"
	default:
		return "text"
	}
}
