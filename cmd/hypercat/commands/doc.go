// Package commands defines the hypercat CLI.
//
// Commands
//
//   - solve  Interactively read a polynomial and print one real root
//
// # Exit codes
//
// Failures map to distinct codes so scripts can tell them apart:
//
//	0  root found and converged
//	1  malformed input or I/O failure
//	2  degenerate polynomial (no constant or linear pivot, no seed worked)
//	3  divergence (series and Newton both failed)
//	4  iteration cap reached without convergence (best-effort root printed)
package commands
