// Package css renders nested ordered documents into CSS text.
//
// A stylesheet is a Dict: an ordered list of entries whose keys are
// selectors, at-rules, "%name" extend declarations, comment or raw-block
// markers, and whose values are declaration values, nested documents,
// Extend references or Override lists. Render walks the document and
// produces text in one of six formatting modes, from Compressed single-line
// output to deeply Indented3 nesting.
//
// Values are built with a small algebra: Var composes selector and media
// query fragments, Unit/Quantity/Sum do exact arithmetic that folds into
// calc() expressions, AtRule builds "@media ..." style headers, and the
// Keywords registry hands out vars on demand.
package css
