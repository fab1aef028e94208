package grammar

import "github.com/lukeod/rustlex/peg"

// FrontmatterFenceRule is the name used by package cleanup to resolve the
// frontmatter-fence grammar out of a Grammar. Frontmatter removal happens
// before tokenisation proper, but it is expressed with the same PEG
// evaluator and the same Mark/Check back-reference mechanism as raw-string
// hash balancing, so it is defined here rather than duplicated in
// package cleanup.
const FrontmatterFenceRule = "Frontmatter"

// frontmatterRules defines a "---"-delimited frontmatter block: an opening
// line of three or more dashes (optionally followed by an info string),
// arbitrary content, and a closing line of dashes. The closing fence is
// required to carry exactly as many dashes as the opening one (Check
// enforces an exact character match, not merely "at least as many" the
// way rustc's real frontmatter accepts) — documented as a simplification
// in DESIGN.md.
func frontmatterRules() map[string]peg.Expr {
	dashes := peg.Seq(peg.Lit("-"), peg.Lit("-"), peg.Lit("-"), peg.Star(peg.Lit("-")))

	return map[string]peg.Expr{
		"DASHES_3PLUS": dashes,
		"FrontmatterCloseLine": peg.Seq(
			peg.Class{Kind: peg.ClassLF},
			peg.Check{ID: "fmfence", E: peg.Rule("DASHES_3PLUS")},
			peg.Star(peg.Seq(peg.Not(peg.Class{Kind: peg.ClassLF}), peg.Class{Kind: peg.ClassAny})),
		),
		FrontmatterFenceRule: peg.Seq(
			peg.Mark{ID: "fmfence", E: peg.Rule("DASHES_3PLUS")},
			peg.Star(peg.Seq(peg.Not(peg.Class{Kind: peg.ClassLF}), peg.Class{Kind: peg.ClassAny})),
			peg.Class{Kind: peg.ClassLF},
			peg.Star(peg.Seq(peg.Not(peg.Rule("FrontmatterCloseLine")), peg.Class{Kind: peg.ClassAny})),
			peg.Rule("FrontmatterCloseLine"),
		),
	}
}
