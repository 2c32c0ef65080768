// Package source provides RequestSource implementations.
//
// Static serves a fixed, ordered request batch. DefaultRequests returns the
// reference batch of ten requests, "Request_A" through "Request_J".
package source
