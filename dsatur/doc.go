// Package dsatur implements the DSATUR greedy saturation-degree coloring
// heuristic used to seed the branch-cut-and-price solver's initial upper
// bound and initial columns.
//
// At each step the uncolored vertex maximizing (saturation degree, then
// vertex degree) is chosen and assigned the smallest color unused among its
// colored neighbors. Runs in O(n^2) per call, matching the original
// source's src/dsatur.cpp.
package dsatur
