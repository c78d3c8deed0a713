package services

import (
	"context"
	"testing"

	"github.com/adstradigital/adinvoice-sub000/internal/proposal"
)

func TestResolveFallsBackToBuiltins(t *testing.T) {
	svc := NewTemplateService(setupDB(t))
	ctx := context.Background()

	style := svc.Resolve(ctx, "tenant-a", 3)
	if style.Name != "Professional" {
		t.Fatalf("style = %q, want Professional", style.Name)
	}

	// Unknown ids resolve to the default template.
	style = svc.Resolve(ctx, "tenant-a", 99)
	if style.ID != proposal.DefaultTemplateID {
		t.Fatalf("fallback id = %d, want %d", style.ID, proposal.DefaultTemplateID)
	}
}

func TestTenantTemplateOverride(t *testing.T) {
	svc := NewTemplateService(setupDB(t))
	ctx := context.Background()

	custom := proposal.TemplateStyle{
		Name: "Branded",
		File: "branded.jpg",
		Regions: proposal.RegionSet{
			Header: proposal.RegionStyle{FontFamily: "Georgia", FontSize: "30px", Color: "#222222"},
		},
	}
	rec, err := svc.Create(ctx, "tenant-a", custom)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got := svc.Resolve(ctx, "tenant-a", int(rec.ID))
	if got.Name != "Branded" {
		t.Fatalf("name = %q, want Branded", got.Name)
	}
	if got.Regions.Header.FontFamily != "Georgia" {
		t.Fatalf("header font = %q", got.Regions.Header.FontFamily)
	}

	// Another tenant does not see it and falls back to the default.
	other := svc.Resolve(ctx, "tenant-b", int(rec.ID))
	if other.Name == "Branded" {
		t.Fatalf("tenant-b resolved another tenant's template")
	}

	styles, err := svc.List(ctx, "tenant-a")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(styles) != len(proposal.BuiltinStyles())+1 {
		t.Fatalf("list size = %d", len(styles))
	}
}
