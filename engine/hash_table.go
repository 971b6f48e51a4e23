// hash_table.go implements the global transposition table shared,
// without any locking, by every worker in the Lazy SMP pool (see
// pool.go). Each slot is a 4-entry bucket indexed by the low bits of
// the zobrist key. Safety against a writer racing a reader comes
// entirely from a per-entry checksum computed over the entry's other
// fields: get only ever returns a slot whose checksum matches, so
// a read that lands mid-write (a torn entry) is silently discarded
// instead of returned. A stale entry from an earlier, unrelated
// position is a correctness non-issue too — it is replaced the next
// time that bucket is written and, until then, is just a cache miss
// the full-width hash comparison catches.

package engine

import "unsafe" // for sizeof

var (
	// DefaultHashTableSizeMB is the default size in MB.
	DefaultHashTableSizeMB = 64
	// GlobalHashTable is the global transposition table.
	GlobalHashTable *HashTable
)

type hashFlags uint8

const noEntry hashFlags = 0 // the slot holds no usable entry

const (
	exact      hashFlags = 1 << iota // exact score is known
	failedLow                        // Search failed low, upper bound.
	failedHigh                       // Search failed high, lower bound
)

// isInBounds returns true if score matches range defined by α, β and flags.
func isInBounds(flags hashFlags, α, β, score int32) bool {
	if flags&exact != 0 {
		// Simply return if the score is exact.
		return true
	}
	if flags&failedLow != 0 && score <= α {
		// Previously the move failed low so the actual score is at most
		// entry.score. If that's lower than α this will also fail low.
		return true
	}
	if flags&failedHigh != 0 && score >= β {
		// Previously the move failed high so the actual score is at least
		// entry.score. If that's higher than β this will also fail high.
		return true
	}
	return false
}

// getBound returns the bound for score relative to α and β.
func getBound(α, β, score int32) hashFlags {
	if score <= α {
		return failedLow
	}
	if score >= β {
		return failedHigh
	}
	return exact
}

// hashEntry is a value in the transposition table. checksum is a hash
// of every other field; it is the torn-write detector, not a
// collision-resolution lock, so the full zobrist key is stored in
// hash and compared directly.
type hashEntry struct {
	hash     uint64    // full zobrist key, for matching without a mutex
	move     Move      // best move
	score    int16     // score of the position. if mate, score is relative to current position.
	depth    int8      // remaining search depth
	kind     hashFlags // type of hash
	age      uint32    // write counter; smallest age in a bucket is evicted first
	checksum uint64
}

// computeChecksum hashes every field of e except checksum itself.
func (e hashEntry) computeChecksum() uint64 {
	const prime = 1099511628211
	h := uint64(14695981039346656037) ^ e.hash
	h *= prime
	h ^= uint64(e.move.moveType)<<32 | uint64(e.move.from)<<24 | uint64(e.move.to)<<16 | uint64(e.move.capture)<<8 | uint64(e.move.target)
	h *= prime
	h ^= uint64(uint16(e.score))
	h *= prime
	h ^= uint64(uint8(e.depth))
	h *= prime
	h ^= uint64(e.kind)
	h *= prime
	h ^= uint64(e.age)
	h *= prime
	return h
}

// valid reports whether e is set (kind != noEntry) and not torn.
func (e hashEntry) valid() bool {
	return e.kind != noEntry && e.checksum == e.computeChecksum()
}

// bucketSize is the number of entries sharing an index; bucketing gives
// Lazy SMP workers somewhere to put a colliding position instead of
// evicting each other's useful entries outright.
const bucketSize = 4

type hashBucket [bucketSize]hashEntry

// HashTable is a transposition table. Engine uses this table to cache
// position scores so it doesn't have to research them again.
//
// There is no mutex: every worker reads and writes the same buckets
// concurrently and safety relies entirely on hashEntry's checksum (see
// get and valid). A racing read may observe a stale or torn
// entry; stale merely misses an optimization, torn is rejected by the
// checksum. Entries are never required for correctness of the search
// result, only for speed.
type HashTable struct {
	table []hashBucket
	mask  uint32
}

// NewHashTable builds transposition table that takes up to hashSizeMB megabytes.
func NewHashTable(hashSizeMB int) *HashTable {
	// Choose hashSize such that it is a power of two.
	bucketBytes := uint64(unsafe.Sizeof(hashBucket{}))
	numBuckets := uint64(hashSizeMB) << 20 / bucketBytes
	if numBuckets == 0 {
		numBuckets = 1
	}

	for numBuckets&(numBuckets-1) != 0 {
		numBuckets &= numBuckets - 1
	}
	return &HashTable{
		table: make([]hashBucket, numBuckets),
		mask:  uint32(numBuckets - 1),
	}
}

// Size returns the number of buckets in the table.
func (ht *HashTable) Size() int {
	return int(ht.mask + 1)
}

// index returns the bucket index for zobrist.
func index(zobrist uint64, mask uint32) uint32 {
	return uint32(zobrist) & mask
}

// put puts a new entry in the table. No mutex is taken: the bucket is
// scanned for a matching hash, else the slot with the smallest age is
// picked, and the whole record is built locally (including its
// checksum) before the single write into the slot.
func (ht *HashTable) put(pos *Position, entry hashEntry) {
	hash := pos.Zobrist()
	bucket := &ht.table[index(hash, ht.mask)]

	target := 0
	for i := range bucket {
		if bucket[i].hash == hash && bucket[i].valid() {
			target = i
			break
		}
		if bucket[i].age < bucket[target].age {
			target = i
		}
	}

	entry.hash = hash
	entry.age = bucket[target].age + 1
	entry.checksum = entry.computeChecksum()
	bucket[target] = entry
}

// get implements get_fast: scans the bucket for the entry matching
// pos's hash, returning it only if its checksum is still valid. A
// torn or absent entry comes back as the zero hashEntry (kind == noEntry).
func (ht *HashTable) get(pos *Position) hashEntry {
	hash := pos.Zobrist()
	bucket := &ht.table[index(hash, ht.mask)]
	for i := range bucket {
		if bucket[i].hash == hash && bucket[i].valid() {
			return bucket[i]
		}
	}
	return hashEntry{}
}

// Clear removes all entries from hash.
func (ht *HashTable) Clear() {
	for i := range ht.table {
		ht.table[i] = hashBucket{}
	}
}

func init() {
	GlobalHashTable = NewHashTable(DefaultHashTableSizeMB)
}
