// Package examples holds the demo units shown in the talk and registers them
// in three groups: the state hook, the effect hook and the context hook.
//
// Units that only differ in how the original component was written (class
// versus function, one provider versus another) share one implementation;
// what is demonstrated is the behavior, not the syntax.
package examples
