// SPDX-License-Identifier: MPL-2.0

// Package container models a hierarchical, typed container file as a tree of
// groups and datasets carrying attributes. It defines the closed set of node
// kinds and value kinds the rest of the application dispatches over, an HDF5
// backend built on github.com/robert-malhotra/go-hdf5, and an in-memory
// backend for programmatic trees.
package container
