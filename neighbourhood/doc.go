// Package neighbourhood — ordered offset sets and subset categorisation,
// the parameter shared by automata, decomposition's connectedness and
// categorisation, and raycast's fan-out.
package neighbourhood
