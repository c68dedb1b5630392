// Package buildmanifest records one modsolve.Solve invocation's output as a
// deterministic, human- and CI-diffable JSON document: per module, its
// direct deps actually used, its ordered file lists, and a digest of the
// ordered file list for a quick "did this module's shape change" check
// across commits.
//
// This is not a cache. The solver never reads a manifest back in order to
// skip work — caching across invocations is explicitly out of scope for
// the solver core. A manifest is a report about a completed solve, used by
// `modsolve build` to record what it did and by `modsolve diff` to compare
// two solves.
package buildmanifest
