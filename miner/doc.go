// Package miner implements the search engine (spec §4.4): setup,
// seeding, the recursive canonical-form-restricted extension search,
// its pruning pipeline, and post-order reporting. It is the top-level
// collaborator that drives graphmodel, embedding, canon, mis,
// fragment, repository and typemgr against one configured run.
package miner
