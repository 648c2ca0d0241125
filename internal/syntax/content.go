package syntax

import "github.com/OneOfOne/xxhash"

// hashString returns a stable 64-bit hash of s. xxhash is borrowed from
// the pack's gossamer dependency set rather than hashed with crypto/fnv:
// content hashes here are a pure equality fast-path, never a security
// boundary, so a fast non-cryptographic hash is the right tool.
func hashString(s string) uint64 {
	return xxhash.ChecksumString64(s)
}

// combineHash folds a child's hash into its parent's running hash in
// position order, boost::hash_combine-style. Order sensitivity matters:
// swapping two children must change the parent's hash, since sibling
// order is significant to equal_content (spec's Non-goals explicitly
// exclude reordering).
func combineHash(acc, h uint64) uint64 {
	acc ^= h + 0x9e3779b97f4a7c15 + (acc << 6) + (acc >> 2)
	return acc
}

// EqualContent reports whether a and b cover textually identical
// subtrees (spec §4.1). The cached content hash is the fast path;
// collisions are broken by a deep structural/textual compare so a hash
// collision never produces a false "equal".
func EqualContent(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.contentHash != b.contentHash {
		return false
	}
	return deepEqual(a, b)
}

// deepEqual recursively compares two frozen nodes' actual text, used
// only to break a content-hash collision.
func deepEqual(a, b *Node) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindAtom:
		return a.content == b.content
	case KindList:
		if a.openContent != b.openContent || a.closeContent != b.closeContent {
			return false
		}
		if len(a.children) != len(b.children) {
			return false
		}
		for i := range a.children {
			if !deepEqual(a.children[i], b.children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
