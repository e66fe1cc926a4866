// Package heuristic implements the Heuristic component: selecting the next
// edge to branch on so as to (a) detect forced moves inline and (b) minimize
// the expected branching factor.
//
// Select first looks for a forced or contradictory move (an Unknown edge
// whose two possible values survive local feasibility 0 or 1 times) and
// returns it immediately — the search engine discovers the contradiction, or
// the forced assignment, trivially on the next decision. Only when every
// candidate survives both values does Select fall back to the additive
// minimum-remaining-values scoring scheme from the specification: edges
// whose decision immediately saturates a clue or closes a point's degree
// cascade into further propagation, so they rank highest.
package heuristic
