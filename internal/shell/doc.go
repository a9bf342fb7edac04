// Package shell implements the inventoryctl command interpreter.
//
// Commands can be run one at a time with Execute, which makes the shell
// scriptable, or interactively with Run, which adds line editing and tab
// completion via readline.
package shell
