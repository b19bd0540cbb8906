// ABOUTME: Mind map renderer laying a tree out as root, branches and point stacks
// ABOUTME: Categories without leaves render without a points block

package render

import "visual-summarizer-api/core/domain"

// RenderMindmap renders tree as a centered root above its branches
func RenderMindmap(tree domain.MindmapNode) VisualNode {
	root := el("div", "vs-mm-root", textEl("span", "vs-mm-root-text", tree.Text))

	branches := el("div", "vs-mm-branches")
	for _, category := range tree.Children {
		branch := el("div", "vs-mm-branch", el("div", "vs-mm-category", textEl("span", "", category.Text)))

		if len(category.Children) > 0 {
			points := el("div", "vs-mm-points")
			for _, leaf := range category.Children {
				points.Children = append(points.Children, el("div", "vs-mm-point", textEl("span", "", leaf.Text)))
			}
			branch.Children = append(branch.Children, points)
		}

		branches.Children = append(branches.Children, branch)
	}

	return el("div", "vs-mindmap", root, branches)
}
