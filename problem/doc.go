// Package problem describes the input format and the constants of a
// competitive-programming problem.
//
// A Problem is usually read from a small YAML document:
//
//	format:
//	  sequence:
//	    - kind: singular
//	      vars:
//	        - {name: N, type: int}
//	    - kind: parallel
//	      vars:
//	        - {name: A, type: int, first_index: {length: N}}
//	constants:
//	  mod: 998244353
//	  yes_str: "Yes"
//	  no_str: "No"
package problem
