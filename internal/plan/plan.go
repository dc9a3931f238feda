package plan

import (
	"path/filepath"
	"sort"

	"golang.org/x/text/unicode/norm"

	"handlesort/internal/handle"
	"handlesort/internal/scan"
)

// Group is the set of files sharing one inferred handle.
type Group struct {
	// Handle is the first-seen verbatim spelling for the group.
	Handle string
	Files  []scan.File
}

// Grouping is the result of classifying a directory listing.
type Grouping struct {
	Groups    []Group
	Ungrouped []scan.File
}

// Entry maps one source file into its per-handle destination. Entries are
// produced here and consumed by the executor; the inference engine never sees
// them.
type Entry struct {
	Source   string
	Handle   string
	DestDir  string
	DestPath string
}

// Classify runs the detector over every file and buckets them by handle.
// Files without a valid handle are collected as ungrouped, which is a normal
// outcome rather than an error. Groups are returned sorted by handle so the
// rest of the pipeline is deterministic.
func Classify(files []scan.File, detector *handle.Detector) Grouping {
	index := make(map[string]int)
	var grouping Grouping
	for _, file := range files {
		result, ok := detector.Infer(file.Stem)
		if !ok {
			grouping.Ungrouped = append(grouping.Ungrouped, file)
			continue
		}
		key := norm.NFC.String(result.Handle)
		pos, ok := index[key]
		if !ok {
			pos = len(grouping.Groups)
			index[key] = pos
			grouping.Groups = append(grouping.Groups, Group{Handle: result.Handle})
		}
		grouping.Groups[pos].Files = append(grouping.Groups[pos].Files, file)
	}
	sort.Slice(grouping.Groups, func(i, j int) bool {
		return grouping.Groups[i].Handle < grouping.Groups[j].Handle
	})
	return grouping
}

// Build produces one move entry per file for every group whose size meets
// minCount. The destination subdirectory of root is named exactly as the
// group handle, leading dots and all.
func Build(root string, grouping Grouping, minCount int) []Entry {
	if minCount < 1 {
		minCount = 1
	}
	var entries []Entry
	for _, group := range grouping.Groups {
		if len(group.Files) < minCount {
			continue
		}
		destDir := filepath.Join(root, group.Handle)
		for _, file := range group.Files {
			entries = append(entries, Entry{
				Source:   file.Path,
				Handle:   group.Handle,
				DestDir:  destDir,
				DestPath: filepath.Join(destDir, file.Name),
			})
		}
	}
	return entries
}
