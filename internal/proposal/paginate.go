package proposal

// DefaultCapacity is the number of item rows a page holds.
const DefaultCapacity = 10

// PagePlan describes one primary page: which window of the item sequence it
// carries and which sections are visible on it.
type PagePlan struct {
	Index  int
	Offset int // global index of the first item on this page
	Items  []LineItem
	First  bool
	Last   bool
}

// ShowHeader reports whether the issuer/recipient header block is visible.
// It appears on the first page only.
func (p PagePlan) ShowHeader() bool { return p.First }

// ShowTotals reports whether the totals block is visible. Totals, notes, and
// footer appear on the last page only.
func (p PagePlan) ShowTotals() bool { return p.Last }

// ShowNotes reports whether the notes block is visible.
func (p PagePlan) ShowNotes() bool { return p.Last }

// ShowFooter reports whether the footer block is visible.
func (p PagePlan) ShowFooter() bool { return p.Last }

// Serial is the running global serial number (S.No) of the item at local on
// this page, independent of capacity.
func (p PagePlan) Serial(local int) int { return p.Offset + local + 1 }

// ExplanationPlan mirrors one primary page: it lists name and description for
// the items of that chunk on a dedicated page.
type ExplanationPlan struct {
	Index int
	Items []LineItem
}

// Plan is the result of chunking an item sequence: the primary pages and the
// parallel explanation pages derived from the same chunking. Explanation
// pages are rendered after all primary pages, in chunk order.
type Plan struct {
	Capacity     int
	Pages        []PagePlan
	Explanations []ExplanationPlan
}

// Paginate chunks items into fixed-capacity pages. An empty item list still
// yields one primary page and one explanation page so the document is always
// renderable. The concatenation of all primary-page item slices, in page
// order, equals items exactly for any capacity >= 1.
func Paginate(items []LineItem, capacity int) (Plan, error) {
	if capacity < 1 {
		return Plan{}, &StructuralError{Field: "capacity", Reason: "must be at least 1"}
	}
	for i, it := range items {
		if err := checkItem(i, it); err != nil {
			return Plan{}, err
		}
	}

	pageCount := (len(items) + capacity - 1) / capacity
	if pageCount == 0 {
		pageCount = 1
	}

	plan := Plan{Capacity: capacity}
	for i := 0; i < pageCount; i++ {
		start := i * capacity
		end := start + capacity
		if start > len(items) {
			start = len(items)
		}
		if end > len(items) {
			end = len(items)
		}
		chunk := items[start:end]
		plan.Pages = append(plan.Pages, PagePlan{
			Index:  i,
			Offset: start,
			Items:  chunk,
			First:  i == 0,
			Last:   i == pageCount-1,
		})
		plan.Explanations = append(plan.Explanations, ExplanationPlan{Index: i, Items: chunk})
	}
	return plan, nil
}
