package proposal

import "sync"

// RegionStyle is a typography/alignment/color descriptor for one named region
// of a page.
type RegionStyle struct {
	FontFamily string `json:"fontFamily,omitempty"`
	FontSize   string `json:"fontSize,omitempty"`
	FontWeight string `json:"fontWeight,omitempty"`
	Color      string `json:"color,omitempty"`
	Background string `json:"background,omitempty"`
	Align      string `json:"align,omitempty"`
}

// RegionSet names every styleable region of a proposal page.
type RegionSet struct {
	Container   RegionStyle `json:"container"`
	Header      RegionStyle `json:"header"`
	SubHeader   RegionStyle `json:"subHeader"`
	ClientInfo  RegionStyle `json:"clientInfo"`
	TableHeader RegionStyle `json:"tableHeader"`
	TableCell   RegionStyle `json:"tableCell"`
	Totals      RegionStyle `json:"totals"`
	Notes       RegionStyle `json:"notes"`
	Footer      RegionStyle `json:"footer"`
}

// TemplateStyle is a named visual descriptor. File references the background
// artwork the exporter draws under the page content. Values are immutable
// once loaded; selecting a style never mutates document data.
type TemplateStyle struct {
	ID      int       `json:"id"`
	Name    string    `json:"name"`
	File    string    `json:"file"`
	Regions RegionSet `json:"regions"`
}

// DefaultTemplateID identifies the built-in Classic style that lookup falls
// back to.
const DefaultTemplateID = 1

// BuiltinStyles returns the shipped template catalog.
func BuiltinStyles() []TemplateStyle {
	return []TemplateStyle{
		{
			ID:   1,
			Name: "Classic",
			File: "template_1.jpg",
			Regions: RegionSet{
				Container:   RegionStyle{FontFamily: "Times New Roman, serif", FontSize: "14px", FontWeight: "normal", Color: "#dfdcdc", Align: "left"},
				Header:      RegionStyle{FontSize: "20px", FontWeight: "bold", Color: "#b2b4b6", Align: "left"},
				SubHeader:   RegionStyle{FontSize: "16px", FontWeight: "bold", Color: "#1b4496"},
				ClientInfo:  RegionStyle{FontSize: "14px", FontWeight: "normal", Color: "#fdf6f6"},
				TableHeader: RegionStyle{FontSize: "14px", FontWeight: "bold", Color: "#000000", Background: "#f0f0f0", Align: "left"},
				TableCell:   RegionStyle{FontSize: "14px", Color: "#000000", Align: "left"},
				Totals:      RegionStyle{FontSize: "14px", FontWeight: "bold", Color: "#111111", Align: "right"},
				Notes:       RegionStyle{FontSize: "13px", Color: "#333333", Align: "left"},
				Footer:      RegionStyle{FontSize: "12px", Color: "#555555", Align: "center"},
			},
		},
		{
			ID:   2,
			Name: "Modern",
			File: "template_2.jpg",
			Regions: RegionSet{
				Container:   RegionStyle{FontFamily: "Arial, sans-serif", FontSize: "13px", FontWeight: "normal", Color: "#222222", Align: "left"},
				Header:      RegionStyle{FontSize: "22px", FontWeight: "bold", Color: "#473b32", Align: "center"},
				SubHeader:   RegionStyle{FontSize: "16px", FontWeight: "bold", Color: "#251d18"},
				ClientInfo:  RegionStyle{FontSize: "13px", FontWeight: "normal", Color: "#e9e8e8"},
				TableHeader: RegionStyle{FontSize: "14px", FontWeight: "bold", Color: "#222222", Background: "#e0f7fa", Align: "center"},
				TableCell:   RegionStyle{FontSize: "13px", Color: "#222222", Align: "center"},
				Totals:      RegionStyle{FontSize: "14px", FontWeight: "bold", Color: "#222222", Align: "right"},
				Notes:       RegionStyle{FontSize: "13px", Color: "#444444", Align: "left"},
				Footer:      RegionStyle{FontSize: "12px", Color: "#271e09", Align: "center"},
			},
		},
		{
			ID:   3,
			Name: "Professional",
			File: "template_3.jpg",
			Regions: RegionSet{
				Container:   RegionStyle{FontFamily: "Verdana, sans-serif", FontSize: "15px", FontWeight: "normal", Color: "#fff8f8", Align: "right"},
				Header:      RegionStyle{FontSize: "22px", FontWeight: "bold", Color: "#ffffff", Align: "right"},
				SubHeader:   RegionStyle{FontSize: "16px", FontWeight: "bold", Color: "#ffffff"},
				ClientInfo:  RegionStyle{FontSize: "14px", FontWeight: "normal", Color: "#ffffff"},
				TableHeader: RegionStyle{FontSize: "14px", FontWeight: "bold", Color: "#000000", Background: "#d4cece", Align: "right"},
				TableCell:   RegionStyle{FontSize: "14px", Color: "#0b0a0a", Align: "right"},
				Totals:      RegionStyle{FontSize: "14px", FontWeight: "bold", Color: "#000000", Align: "right"},
				Notes:       RegionStyle{FontSize: "13px", Color: "#666666", Align: "right"},
				Footer:      RegionStyle{FontSize: "11px", Color: "#030303", Align: "center"},
			},
		},
	}
}

// Registry resolves template ids to style descriptors. Lookup never fails:
// unknown ids fall back to the built-in default so a missing or stale catalog
// cannot block rendering. Registering tenant templates fetched from the API
// is safe from concurrent handlers.
type Registry struct {
	mu     sync.RWMutex
	styles map[int]TemplateStyle
}

// NewRegistry returns a registry seeded with the built-in catalog.
func NewRegistry() *Registry {
	r := &Registry{styles: make(map[int]TemplateStyle)}
	for _, s := range BuiltinStyles() {
		r.styles[s.ID] = s
	}
	return r
}

// Register adds or replaces a style descriptor.
func (r *Registry) Register(s TemplateStyle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.styles[s.ID] = s
}

// Lookup resolves id to its descriptor, or the default (id 1) when the id is
// unknown.
func (r *Registry) Lookup(id int) TemplateStyle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.styles[id]; ok {
		return s
	}
	return r.styles[DefaultTemplateID]
}
