// Package doctor checks and repairs the remark setup of a folder.
//
// Explorer only shows a folder remark when desktop.ini is stored as
// UTF-16, carries the hidden and system attributes, and the folder itself
// is marked read-only. The doctor package detects each of these problems
// and optionally fixes them:
//
//	report, err := doctor.Run(ctx, folder, false) // check only
//	report, err := doctor.Run(ctx, folder, true)  // check and fix
//
// # Issue Categories
//
//   - [CategoryEncoding]: desktop.ini not in a Unicode encoding
//   - [CategoryAttributes]: missing hidden/system or read-only bits
//   - [CategoryContent]: desktop.ini without a remark to show
//
// Each [Issue] includes a description and the fix action --fix would take.
// Content issues are informational and have no fix.
package doctor
