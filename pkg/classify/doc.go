// Package classify runs the pattern catalog against extracted document text.
//
// Every detector is evaluated independently against the full text; matched
// categories are reported in catalog order, never in match-position order,
// so the result is deterministic even when categories overlap within the
// same passage. The governing retention period is the maximum retention
// period among the matched categories, or zero when nothing matched.
package classify
