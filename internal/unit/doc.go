// Package unit defines the contract shared by every example unit: how an
// example is declared, how a realized instance renders and reacts to user
// actions, and how remote-refresh instances move through their fetch phases.
//
// An Example is immutable once declared. Each call to Example.New realizes a
// fresh Unit with its own state; the deck and the catalog realize their own
// instances from the same Example and never share them.
package unit
