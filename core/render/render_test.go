package render

import (
	"strings"
	"testing"

	"visual-summarizer-api/core/domain"
	"visual-summarizer-api/core/parse"
)

func TestRenderMindmap_Layout(t *testing.T) {
	tree := parse.ParseMindmap("Topic\n  Cat1\n    - A\n    - B\n  Empty\n")

	node := RenderMindmap(*tree)

	root, ok := node.Find("vs-mm-root-text")
	if !ok || root.Text != "Topic" {
		t.Fatalf("root text = %+v, want Topic", root)
	}

	branches := node.FindAll("vs-mm-branch")
	if len(branches) != 2 {
		t.Fatalf("len(branches) = %d, want 2", len(branches))
	}
	if got := len(branches[0].FindAll("vs-mm-point")); got != 2 {
		t.Errorf("Cat1 points = %d, want 2", got)
	}
	if _, ok := branches[1].Find("vs-mm-points"); ok {
		t.Error("category without leaves should not render a points block")
	}
}

func TestRenderTakeaways_PointAffordancesFollowState(t *testing.T) {
	doc := parse.ParseTakeaways("## SUMMARY\nS\n## KEY POINTS\n- Saved one\n- Plain one\n- Loading one\n- Failed one\n")
	state := func(text string) PointState {
		switch text {
		case "Saved one":
			return PointState{Saved: true, Status: DetailLoaded, Detail: "More words"}
		case "Loading one":
			return PointState{Status: DetailLoading}
		case "Failed one":
			return PointState{Status: DetailFailed}
		}
		return PointState{}
	}

	blocks := RenderTakeaways(doc, state)
	if len(blocks) != 3 {
		t.Fatalf("len(blocks) = %d, want summary, points and stats", len(blocks))
	}

	items := blocks[1].FindAll("vs-point-btns")
	if len(items) != 4 {
		t.Fatalf("len(points) = %d, want 4", len(items))
	}

	saved := blocks[1].FindAll("saved")
	if len(saved) != 1 || saved[0].Text != glyphSaved {
		t.Errorf("saved buttons = %+v, want one filled star", saved)
	}
	unsaved := blocks[1].FindAll("vs-save-point-btn")
	if unsaved[1].Text != glyphUnsaved {
		t.Errorf("unsaved glyph = %q, want %q", unsaved[1].Text, glyphUnsaved)
	}

	details := blocks[1].FindAll("vs-point-detail")
	if len(details) != 3 {
		t.Fatalf("len(details) = %d, want 3", len(details))
	}
	if details[0].Children[0].Text != "More words" {
		t.Errorf("loaded detail = %+v", details[0])
	}
	if !strings.Contains(details[1].Class, "vs-loading-inline") {
		t.Errorf("loading detail class = %q", details[1].Class)
	}
	if !strings.Contains(details[2].Class, "vs-error-inline") || details[2].Children[0].Text != detailFailedText {
		t.Errorf("failed detail = %+v", details[2])
	}
}

func TestRenderTakeaways_StatsPlaceholder(t *testing.T) {
	doc := parse.ParseTakeaways("## SUMMARY\nOnly a summary\n")

	blocks := RenderTakeaways(doc, nil)

	stats := blocks[len(blocks)-1]
	if !strings.Contains(stats.Class, "vs-stats") {
		t.Fatalf("last block class = %q, want stats", stats.Class)
	}
	list := stats.Children[1]
	if len(list.Children) != 1 || list.Children[0].Text != domain.NoStatsPlaceholder {
		t.Errorf("stats list = %+v", list)
	}
}

func TestRenderVisual_FallbackShowsRawText(t *testing.T) {
	reply := "no fences <b>here</b>"
	blocks := RenderVisual(parse.ParseVisual(reply))

	if len(blocks) != 1 {
		t.Fatalf("len(blocks) = %d, want 1", len(blocks))
	}
	pre, ok := blocks[0].Find("vs-tree")
	if !ok || pre.Text != reply {
		t.Errorf("fallback pre = %+v, want %q", pre, reply)
	}

	out, err := HTML(blocks...)
	if err != nil {
		t.Fatalf("HTML returned error: %v", err)
	}
	if strings.Contains(out, "<b>") {
		t.Errorf("HTML should escape reply text, got %s", out)
	}
}

func TestRenderVisual_MindmapsBeforeStructures(t *testing.T) {
	doc := parse.ParseVisual("```structure\nS\n```\n```mindmap\nM\n  C\n```")

	blocks := RenderVisual(doc)

	if len(blocks) != 2 {
		t.Fatalf("len(blocks) = %d, want 2", len(blocks))
	}
	if blocks[0].Class != "vs-diagram" || blocks[1].Class != "vs-structure" {
		t.Errorf("block order = %q, %q", blocks[0].Class, blocks[1].Class)
	}
}

func TestRenderImages(t *testing.T) {
	if RenderImages(nil) != nil {
		t.Error("RenderImages(nil) should be nil")
	}

	section := RenderImages([]string{"https://example.com/a.jpg", "https://example.com/b.jpg"})
	if section == nil {
		t.Fatal("RenderImages returned nil")
	}
	if section.Children[0].Text != "Images (2)" {
		t.Errorf("heading = %q", section.Children[0].Text)
	}
	thumbs := section.FindAll("vs-thumb")
	if len(thumbs) != 2 || thumbs[1].Attrs["src"] != "https://example.com/b.jpg" {
		t.Errorf("thumbs = %+v", thumbs)
	}
}

func TestRenderPanel_Phases(t *testing.T) {
	tests := []struct {
		phase     domain.Phase
		wantClass string
	}{
		{domain.PhaseWelcome, "vs-welcome"},
		{domain.PhaseLoading, "vs-loading"},
		{domain.PhaseError, "vs-error"},
	}

	for _, tt := range tests {
		t.Run(string(tt.phase), func(t *testing.T) {
			panel := RenderPanel(View{Mode: domain.ModeVisual, Phase: tt.phase, Message: "boom"})
			if _, ok := panel.Find(tt.wantClass); !ok {
				t.Errorf("panel for %s has no %s block", tt.phase, tt.wantClass)
			}
			if _, ok := panel.Find("vs-regenerate-btn"); ok {
				t.Error("regenerate should only show with a result")
			}
			active, _ := panel.Find("active")
			if active.Attrs["data-mode"] != string(domain.ModeVisual) {
				t.Errorf("active tab = %+v", active)
			}
		})
	}
}

func TestRenderPanel_Result(t *testing.T) {
	doc := parse.Parse(domain.ModeTakeaways, "## SUMMARY\nHello\n## KEY POINTS\n- P\n")

	panel := RenderPanel(View{
		Mode:     domain.ModeTakeaways,
		Phase:    domain.PhaseResult,
		Document: &doc,
		Images:   []string{"https://example.com/x.jpg"},
	})

	if _, ok := panel.Find("vs-takeaways"); !ok {
		t.Error("result panel should contain the takeaways container")
	}
	if _, ok := panel.Find("vs-images"); !ok {
		t.Error("result panel should contain the images section")
	}
	if _, ok := panel.Find("vs-save-btn"); !ok {
		t.Error("result panel should show the save action")
	}

	out, err := HTML(panel)
	if err != nil {
		t.Fatalf("HTML returned error: %v", err)
	}
	if !strings.Contains(out, `data-action="toggle-save"`) || !strings.Contains(out, `data-point="P"`) {
		t.Errorf("HTML missing point affordances: %s", out)
	}
}
