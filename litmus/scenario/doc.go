// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenario is the catalog of litmus tests built on packages mem
// and rcu.
//
// Naming follows the herd/litmus7 convention: the pattern (CoRR, MP, LB,
// SB) followed by the ordering used on each side ("+rel", "+fence",
// "+rcu", "+fences"). Register names are "thread:register".
//
//	CoRR          read-read coherence; r0=1,r1=0 forbidden
//	CoRR4         coherence over three writes and four reads
//	MP            message passing, plain; flag=1,buf=0 allowed (weak only)
//	MP+rel+fence  release store vs. read+fence; flag=1,buf=0 forbidden
//	MP+rcu        Publish vs. Dereference; published,marker=0 forbidden
//	LB+fence      load buffering with a control dependency and a fence
//	SB            store buffering, plain; r0=0,r1=0 allowed (even TSO)
//	SB+fences     store buffering with fences; r0=0,r1=0 forbidden
package scenario
