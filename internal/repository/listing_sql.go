package repository

import (
	"strings"

	"blog-cms/internal/content"
)

// listingWhere renders the WHERE clause for q against the posts table
// aliased as p. Parameters are appended to args.
func listingWhere(q content.QueryDescriptor, args *sqlArgs) string {
	var conds []string

	vis := q.Visibility
	switch {
	case vis.Unrestricted:
	case vis.OwnerID != 0:
		conds = append(conds, "(p.status = "+args.add(string(vis.Status))+" OR p.author_id = "+args.add(vis.OwnerID)+")")
	default:
		conds = append(conds, "p.status = "+args.add(string(vis.Status)))
	}

	switch q.Filter.Kind {
	case content.FilterCategorySlug:
		conds = append(conds, `EXISTS (
			SELECT 1 FROM post_categories pc
			JOIN categories c ON c.id = pc.category_id
			WHERE pc.post_id = p.id AND c.slug = `+args.add(q.Filter.Slug)+`)`)
	case content.FilterTagSlug:
		conds = append(conds, `EXISTS (
			SELECT 1 FROM post_tags pt
			JOIN tags t ON t.id = pt.tag_id
			WHERE pt.post_id = p.id AND t.slug = `+args.add(q.Filter.Slug)+`)`)
	case content.FilterAuthorID:
		conds = append(conds, "p.author_id = "+args.add(q.Filter.AuthorID))
	}

	if len(conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(conds, " AND ")
}

var listingOrders = map[content.Order]string{
	content.OrderNewestFirst: "ORDER BY p.created_at DESC, p.id DESC",
}

// listingOrder renders the ORDER BY clause for o. Unknown orders fall back
// to newest first.
func listingOrder(o content.Order) string {
	if clause, ok := listingOrders[o]; ok {
		return clause
	}
	return listingOrders[content.OrderNewestFirst]
}
