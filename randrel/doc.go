// Package randrel builds a random O2M adjacency by independent
// Erdős–Rényi Bernoulli trials per (element, node) pair: a stable,
// documented trial order and sentinel-error validation up front, adapted
// from graphs to a bipartite element-to-node relation.
package randrel
