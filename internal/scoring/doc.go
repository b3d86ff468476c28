// Package scoring turns recorded answers into a Keirsey temperament code.
//
// Answers are framed into batches of seven facet positions (Ledger), summed
// per position and merged into the four dichotomy aggregates (Aggregate),
// resolved into letters (ResolveCode) and matched against the temperament
// pattern table (Classify). Everything except the Ledger is a pure function of
// the Ledger's current contents, so results can be queried at any point.
package scoring
