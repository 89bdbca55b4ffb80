// Package presenter keeps audience screens in step with the presenter.
//
// The Hub is a socket.io server mounted next to the web deck. Every time the
// presenter moves to a step, a Frame describing it is broadcast as a "step"
// event; newly connected followers receive the latest frame right away.
// Follow is the matching client used by the `follow` command.
package presenter
