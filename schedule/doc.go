// Package schedule implements the time-dependent algebra over transit
// edges used by the rest of tourloop: a Schedule is a minimal set of
// time-discriminating (departure, arrival) Segments plus an optional
// always-available "anytime" duration, and this package is the sole
// owner of the operations that build, combine, and prune them.
//
// Complexity:
//
//   - EraseNonMinimal: O(n log n), a canonicalizing sort plus an O(n) scan.
//   - Compose:         O(|A|+|B|) two-pointer sweep plus an O(n log n) sort
//     of the collected candidates.
//   - Merge:           O(|A|+|B|) concatenation, an O(n log n) sort, then
//     EraseNonMinimal.
//
// Determinism:
//
//   - Segments are always kept sorted by (departure asc, arrival desc on
//     ties); every operation in this package preserves that order so
//     callers never need to re-sort.
//
// Ownership:
//
//   - Schedule and Segment are value types. Compose and Merge never
//     mutate their Schedule inputs; Merge's destination parameter is the
//     sole exception, by design (see Merge's doc comment).
package schedule
