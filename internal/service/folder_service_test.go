package service

import (
	"testing"

	"rnote/internal/contract"
	"rnote/internal/utils/apierror"
)

func mustCreateFolder(t *testing.T, env *testEnv, name string, tags []string) *contract.FolderResponse {
	t.Helper()

	folder, apierr := env.folders.CreateFolder(env.actor, &contract.FolderRequest{
		Name: name,
		Tags: tags,
	})
	if apierr != nil {
		t.Fatalf("CreateFolder(%q) failed: %+v", name, apierr)
	}
	return folder
}

func summaryNames(summaries []*contract.FolderSummary) []string {
	names := make([]string, len(summaries))
	for i, s := range summaries {
		names[i] = s.Name
	}
	return names
}

func TestCreateFolderScenario(t *testing.T) {
	env := newTestEnv(t)

	folder, apierr := env.folders.CreateFolder(env.actor, &contract.FolderRequest{
		Name: "Recipes",
		Tags: []string{"food", "italian"},
		Attributes: []contract.AttributePair{
			{Name: "cuisine", Value: "italian"},
			{Name: "", Value: ""},
			{Name: "", Value: ""},
		},
	})
	if apierr != nil {
		t.Fatalf("CreateFolder() failed: %+v", apierr)
	}

	if got := folder.Tags; len(got) != 2 || got[0] != "food" || got[1] != "italian" {
		t.Errorf("tags = %v, want [food italian]", got)
	}
	if len(folder.Attributes) != 3 {
		t.Fatalf("attributes = %d, want 3", len(folder.Attributes))
	}
	if folder.Attributes[0].Name != "cuisine" || folder.Attributes[0].Value != "italian" {
		t.Errorf("attribute 1 = %+v, want (cuisine, italian)", folder.Attributes[0])
	}
	if folder.Attributes[1].Name != "" || folder.Attributes[2].Name != "" {
		t.Error("attributes 2-3 should be empty")
	}

	// Round-trip through the public identifier, which is handed out
	// in its hyphen-stripped display form.
	if len(folder.ID) != 32 {
		t.Fatalf("public id %q is not in display form", folder.ID)
	}
	fetched, apierr := env.folders.GetFolder(env.actor, folder.ID)
	if apierr != nil {
		t.Fatalf("GetFolder() by display-form id failed: %+v", apierr)
	}
	if fetched.Name != "Recipes" {
		t.Errorf("round-trip folder name = %q, want Recipes", fetched.Name)
	}
}

func TestCreateFolderRejectsDuplicateName(t *testing.T) {
	env := newTestEnv(t)
	mustCreateFolder(t, env, "Recipes", nil)

	_, apierr := env.folders.CreateFolder(env.actor, &contract.FolderRequest{Name: "recipes"})
	if apierr == nil {
		t.Fatal("CreateFolder() accepted a duplicate name")
	}

	structured, ok := apierr.(*apierror.StructuredError)
	if !ok {
		t.Fatalf("expected a structured validation error, got %+v", apierr)
	}
	if len(structured.Errors["name"]) == 0 {
		t.Errorf("expected a problem reported for 'name', got %v", structured.Errors)
	}
}

func TestCreateFolderValidation(t *testing.T) {
	env := newTestEnv(t)

	_, apierr := env.folders.CreateFolder(env.actor, &contract.FolderRequest{
		Name: "",
		Tags: []string{"ok", "has space"},
	})
	if apierr == nil {
		t.Fatal("CreateFolder() accepted invalid input")
	}

	structured, ok := apierr.(*apierror.StructuredError)
	if !ok {
		t.Fatalf("expected a structured validation error, got %+v", apierr)
	}
	if len(structured.Errors["name"]) == 0 {
		t.Errorf("expected a problem for 'name', got %v", structured.Errors)
	}
	if len(structured.Errors["tags[1]"]) == 0 {
		t.Errorf("expected a problem for the bad tag, got %v", structured.Errors)
	}
}

func TestLinkScenario(t *testing.T) {
	env := newTestEnv(t)
	a := mustCreateFolder(t, env, "Recipes", []string{"food"})
	b := mustCreateFolder(t, env, "Travel", []string{"trip"})

	if apierr := env.folders.LinkFolders(env.actor, a.ID, &contract.LinkRequest{Target: b.ID}); apierr != nil {
		t.Fatalf("LinkFolders() failed: %+v", apierr)
	}

	related, apierr := env.folders.RelatedFolders(env.actor, a.ID, "", "", "")
	if apierr != nil {
		t.Fatalf("RelatedFolders() failed: %+v", apierr)
	}
	if len(related) != 1 || related[0].Name != "Travel" {
		t.Errorf("RelatedFolders(a) = %v, want [Travel]", summaryNames(related))
	}

	// Symmetric from the other side.
	related, apierr = env.folders.RelatedFolders(env.actor, b.ID, "", "", "")
	if apierr != nil {
		t.Fatalf("RelatedFolders() failed: %+v", apierr)
	}
	if len(related) != 1 || related[0].Name != "Recipes" {
		t.Errorf("RelatedFolders(b) = %v, want [Recipes]", summaryNames(related))
	}

	linkable, apierr := env.folders.LinkableFolders(env.actor, a.ID, "", "", "")
	if apierr != nil {
		t.Fatalf("LinkableFolders() failed: %+v", apierr)
	}
	if len(linkable) != 0 {
		t.Errorf("LinkableFolders(a) = %v, want neither A nor B", summaryNames(linkable))
	}
}

func TestLinkFoldersRejectsSelfAndDuplicates(t *testing.T) {
	env := newTestEnv(t)
	a := mustCreateFolder(t, env, "Recipes", nil)
	b := mustCreateFolder(t, env, "Travel", nil)

	if apierr := env.folders.LinkFolders(env.actor, a.ID, &contract.LinkRequest{Target: a.ID}); apierr != apierror.SelfLinkError {
		t.Errorf("self-link error = %+v, want SelfLinkError", apierr)
	}

	if apierr := env.folders.LinkFolders(env.actor, a.ID, &contract.LinkRequest{Target: b.ID}); apierr != nil {
		t.Fatalf("LinkFolders() failed: %+v", apierr)
	}
	if apierr := env.folders.LinkFolders(env.actor, b.ID, &contract.LinkRequest{Target: a.ID}); apierr != apierror.AlreadyLinkedError {
		t.Errorf("re-link error = %+v, want AlreadyLinkedError", apierr)
	}
}

func TestUnlinkFolders(t *testing.T) {
	env := newTestEnv(t)
	a := mustCreateFolder(t, env, "Recipes", nil)
	b := mustCreateFolder(t, env, "Travel", nil)

	if apierr := env.folders.UnlinkFolders(env.actor, a.ID, b.ID); apierr != apierror.NotRelatedError {
		t.Errorf("unlink of unrelated folders = %+v, want NotRelatedError", apierr)
	}

	if apierr := env.folders.LinkFolders(env.actor, a.ID, &contract.LinkRequest{Target: b.ID}); apierr != nil {
		t.Fatalf("LinkFolders() failed: %+v", apierr)
	}
	if apierr := env.folders.UnlinkFolders(env.actor, b.ID, a.ID); apierr != nil {
		t.Fatalf("UnlinkFolders() failed: %+v", apierr)
	}

	related, apierr := env.folders.RelatedFolders(env.actor, a.ID, "", "", "")
	if apierr != nil {
		t.Fatalf("RelatedFolders() failed: %+v", apierr)
	}
	if len(related) != 0 {
		t.Errorf("RelatedFolders(a) after unlink = %v, want empty", summaryNames(related))
	}
}

func TestCreateRelatedFolder(t *testing.T) {
	env := newTestEnv(t)
	parent := mustCreateFolder(t, env, "Recipes", nil)

	child, apierr := env.folders.CreateFolder(env.actor, &contract.FolderRequest{
		Name:     "Italian",
		ParentID: parent.ID,
	})
	if apierr != nil {
		t.Fatalf("CreateFolder() with parent failed: %+v", apierr)
	}

	related, apierr := env.folders.RelatedFolders(env.actor, child.ID, "", "", "")
	if apierr != nil {
		t.Fatalf("RelatedFolders() failed: %+v", apierr)
	}
	if len(related) != 1 || related[0].Name != "Recipes" {
		t.Errorf("RelatedFolders(child) = %v, want [Recipes]", summaryNames(related))
	}
}

func TestGetFoldersAppliesFilterAndSort(t *testing.T) {
	env := newTestEnv(t)
	mustCreateFolder(t, env, "Travel", []string{"trip"})
	mustCreateFolder(t, env, "Recipes", []string{"food"})
	mustCreateFolder(t, env, "Music", []string{"audio"})

	folders, apierr := env.folders.GetFolders(env.actor, "", "", SortAlphabetical)
	if apierr != nil {
		t.Fatalf("GetFolders() failed: %+v", apierr)
	}
	want := []string{"Music", "Recipes", "Travel"}
	got := summaryNames(folders)
	if len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Errorf("GetFolders(alphabetical) = %v, want %v", got, want)
	}

	folders, apierr = env.folders.GetFolders(env.actor, "", "foo", "")
	if apierr != nil {
		t.Fatalf("GetFolders() failed: %+v", apierr)
	}
	if len(folders) != 1 || folders[0].Name != "Recipes" {
		t.Errorf("GetFolders(tag=foo) = %v, want [Recipes]", summaryNames(folders))
	}
}

func TestFolderAccessIsOwnerScoped(t *testing.T) {
	env := newTestEnv(t)
	folder := mustCreateFolder(t, env, "Recipes", nil)
	stranger := env.secondUser(t)

	if _, apierr := env.folders.GetFolder(stranger, folder.ID); apierr != apierror.NotFoundError {
		t.Errorf("stranger GetFolder() = %+v, want NotFoundError", apierr)
	}
	if apierr := env.folders.DeleteFolder(stranger, folder.ID); apierr != apierror.NotFoundError {
		t.Errorf("stranger DeleteFolder() = %+v, want NotFoundError", apierr)
	}
}

func TestGetFolderUnknownID(t *testing.T) {
	env := newTestEnv(t)

	if _, apierr := env.folders.GetFolder(env.actor, "not-a-uuid"); apierr != apierror.NotFoundError {
		t.Errorf("GetFolder(garbage) = %+v, want NotFoundError", apierr)
	}
	if _, apierr := env.folders.GetFolder(env.actor, "00000000000000000000000000000000"); apierr != apierror.NotFoundError {
		t.Errorf("GetFolder(unknown) = %+v, want NotFoundError", apierr)
	}
}

func TestUpdateFolderKeepsOwnNameAcrossCasing(t *testing.T) {
	env := newTestEnv(t)
	folder := mustCreateFolder(t, env, "Recipes", nil)

	updated, apierr := env.folders.UpdateFolder(env.actor, folder.ID, &contract.UpdateFolderRequest{
		Name: "RECIPES",
		Tags: []string{"food"},
	})
	if apierr != nil {
		t.Fatalf("UpdateFolder() rename-to-own-name failed: %+v", apierr)
	}
	if updated.Name != "RECIPES" {
		t.Errorf("updated name = %q, want RECIPES", updated.Name)
	}
}
