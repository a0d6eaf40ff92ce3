package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"zkevmsite/internal/content"
	"zkevmsite/internal/tracker"
)

// CategoryCard is a dashboard tile for one tracking category.
func CategoryCard(s tracker.Summary) g.Node {
	c := s.Category
	return Article(
		Class("card category-card"),
		ID("category-"+c.ID),
		H3(A(Href("/track/"+c.ID), g.Text(c.Name))),
		P(g.Text(c.Description)),
		ProgressBar(s.Milestones),
		P(
			Class("muted"),
			g.Textf("%d roadmap items: %d complete, %d in progress, %d blocked",
				s.ItemCount,
				s.Items[tracker.StatusComplete],
				s.Items[tracker.StatusInProgress],
				s.Items[tracker.StatusBlocked]),
		),
	)
}

// ClientCard summarises an execution client and its checklist progress.
func ClientCard(c tracker.Client, p tracker.Progress) g.Node {
	return Article(
		Class("card client-card"),
		H3(A(Href("/clients/"+c.ID), g.Text(c.Name))),
		P(Class("muted"), g.Text(c.Language)),
		P(g.Text(c.Description)),
		ProgressBar(p),
	)
}

// ZKVMCard summarises a zkVM and its checklist progress.
func ZKVMCard(z tracker.ZKVM, p tracker.Progress) g.Node {
	return Article(
		Class("card zkvm-card"),
		H3(A(Href("/zkvms/"+z.ID), g.Text(z.Name))),
		P(Class("muted"), g.Textf("%s · %s · %s", z.Organization, z.ISA, z.ProofSystem)),
		P(g.Text(z.Description)),
		ProgressBar(p),
	)
}

// ProjectLinks renders repository and website links when present.
func ProjectLinks(repository, website string) g.Node {
	return Ul(
		Class("project-links"),
		g.If(repository != "", Li(externalLink(repository, "Repository"))),
		g.If(website != "", Li(externalLink(website, "Website"))),
	)
}

// GuestProgramList shows guest programs with the zkVMs each one targets.
// Targets the dataset does not know are shown as plain labels.
func GuestProgramList(programs []tracker.GuestProgram, d tracker.Dataset) g.Node {
	if len(programs) == 0 {
		return P(Class("empty"), g.Text("No guest programs yet."))
	}
	return Ul(
		Class("guest-programs"),
		g.Map(programs, func(gp tracker.GuestProgram) g.Node {
			return Li(
				Strong(g.Text(gp.Name)),
				g.If(gp.Repository != "", g.Group{g.Text(" "), externalLink(gp.Repository, "source")}),
				Div(Class("targets"), g.Map(gp.ZKVMs, func(id string) g.Node {
					if z, ok := d.ZKVM(id); ok {
						return A(Class("tag"), Href("/zkvms/"+z.ID), g.Text(z.Name))
					}
					return Span(Class("tag tag-missing"), g.Text(id))
				})),
				ProgressBar(d.GuestProgramProgress(gp)),
			)
		}),
	)
}

// PostCard is a blog or learn listing entry.
func PostCard(p content.Post, base string) g.Node {
	return Article(
		Class("post-card"),
		g.If(p.Featured, Span(Class("badge"), g.Text("Featured"))),
		H3(A(Href(base+"/"+p.Slug), g.Text(p.Title))),
		P(
			Class("muted"),
			g.If(!p.Date.IsZero(), g.El("time", g.Attr("datetime", p.Date.Format("2006-01-02")), g.Text(p.Date.Format("January 2, 2006")))),
			g.If(!p.Date.IsZero(), g.Text(" · ")),
			g.Textf("%d min read", p.ReadingTime),
		),
		P(g.Text(p.Excerpt)),
		TagList(p.Tags),
	)
}

// TagList links each tag to its listing page.
func TagList(tags []string) g.Node {
	if len(tags) == 0 {
		return nil
	}
	return Ul(
		Class("tags"),
		g.Map(tags, func(t string) g.Node {
			return Li(A(Class("tag"), Href("/blog/tag/"+content.TagKey(t)), g.Text(t)))
		}),
	)
}

// TeamGrid lists team members for the about page.
func TeamGrid(members []tracker.TeamMember) g.Node {
	return Div(
		Class("team"),
		g.Map(members, func(m tracker.TeamMember) g.Node {
			return Article(
				Class("card member"),
				H3(g.Text(m.Name)),
				P(Class("muted"), g.Text(m.Role)),
				P(g.Text(m.Focus)),
				g.If(m.GitHub != "", externalLink("https://github.com/"+m.GitHub, "@"+m.GitHub)),
			)
		}),
	)
}
