package movie

import "moviecatalog/query"

// SearchSpec builds the text and date search. Conditions are folded in a
// fixed order: title, release date lower bound, upper bound, genre label.
// Newest releases come first.
func SearchSpec(p SearchParams, maxPageSize int) query.Spec {
	return query.NewBuilder().
		Match(FieldTitle, p.Search).
		AtLeast(FieldReleaseDate, p.ReleaseDateFrom).
		AtMost(FieldReleaseDate, p.ReleaseDateTo).
		Contains(FieldGenre, p.GenreName).
		Build(query.Sort{Field: FieldReleaseDate, Direction: query.Desc}, p.Pagination, maxPageSize)
}

// GenreSpec builds the genre browse, most recently created first.
func GenreSpec(p GenreParams, maxPageSize int) query.Spec {
	return query.NewBuilder().
		Contains(FieldGenre, p.GenreName).
		Build(query.Sort{Field: query.Identity, Direction: query.Desc}, p.Pagination, maxPageSize)
}
