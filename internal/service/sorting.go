package service

import (
	"sort"
	"strings"

	"rnote/internal/contract"
	"rnote/internal/domain/entity"
)

// Sort policy tokens accepted by the folder list endpoints. Anything
// else leaves the input order unchanged.
const (
	SortAlphabetical        = "alphabetical"
	SortReverseAlphabetical = "reverse_alphabetical"
	SortRecentlyFirst       = "recently_created_first"
	SortRecentlyLast        = "recently_created_last"
)

// SortFolders orders a folder list by the given policy. The sort is
// stable, and the two descending policies are implemented as the exact
// reversal of their ascending counterparts, so equal keys keep a
// deterministic order in both directions.
func SortFolders(policy string, folders []*entity.Folder) []*entity.Folder {
	out := make([]*entity.Folder, len(folders))
	copy(out, folders)

	switch policy {
	case SortRecentlyFirst, SortRecentlyLast:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt < out[j].CreatedAt
		})
		if policy == SortRecentlyFirst {
			reverseFolders(out)
		}

	case SortAlphabetical, SortReverseAlphabetical:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Name < out[j].Name
		})
		if policy == SortReverseAlphabetical {
			reverseFolders(out)
		}
	}

	return out
}

// FilterFoldersByTag keeps the folders whose space-separated tag
// string contains the filter as a substring (case-sensitive). The
// "all_tags" token and the empty string disable filtering.
func FilterFoldersByTag(tagFilter string, folders []*entity.Folder) []*entity.Folder {
	if tagFilter == "" || tagFilter == contract.TagFilterAll {
		return folders
	}

	out := make([]*entity.Folder, 0, len(folders))
	for _, folder := range folders {
		if strings.Contains(folder.Tags, tagFilter) {
			out = append(out, folder)
		}
	}
	return out
}

func reverseFolders(folders []*entity.Folder) {
	for i, j := 0, len(folders)-1; i < j; i, j = i+1, j-1 {
		folders[i], folders[j] = folders[j], folders[i]
	}
}
