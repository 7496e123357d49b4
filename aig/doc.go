// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package aig defines a concrete type for And-Inverter Graphs (AIG), a data
structure used to represent Boolean functions as a structurally hash-consed
DAG of two-input AND gates and inverters folded into edges.

Basics

An Mgr owns a set of AND nodes and a set of primary inputs. Every operation
that builds a new function (And, Or, Xor, FromExpr, ...) returns a Handle, a
reference-counted pointer into the manager's node arena; Go's garbage
collector drives reclamation of AIG nodes the same way it does for this
module's bdd package, through a finalizer on a small heap cell (pin) that
every copy of the Handle carries.

Structural hashing

And(a, b) looks up its two (possibly complemented) fanins in a hash table
keyed by (fanin0, fanin1) before allocating a new node, so two calls that
build the same function structurally (not just semantically) always share
one node. This is weaker than a BDD's canonical form — two structurally
different but functionally equivalent AIGs are not automatically merged —
which is what the local rewriting pass in rewrite.go is for.
*/
package aig
