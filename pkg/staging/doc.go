// Package staging moves renamed entries through temporary holding
// directories so that a batch of renames can be applied safely even when
// sources and destinations overlap, such as two names being swapped or a
// new name that is only freed by a removal later in the batch.
//
// A Resolver picks collision-free names by appending ~, ~1, ~2, ... to a
// base name. A Coordinator owns the staging directories of one run: it
// stages entries into them, promotes entries out to their destinations,
// and removes the directories at the end.
package staging
