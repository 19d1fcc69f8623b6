// Package basis implements the index arithmetic between the 3N-basis and
// the NN33-basis used for force-constant matrices of N atoms.
//
// A 3N-basis index is k = atom*3 + cart with cart in {0,1,2}. An NN33
// serial flattens the 4-tuple (atomI, atomJ, cartA, cartB) as
//
//	serial = atomI*9N + atomJ*9 + cartA*3 + cartB
//
// which is the same position as the pair of 3N-basis indices
// (atomI*3+cartA, atomJ*3+cartB) in an (N,N,3,3) array.
//
// PermTable is the canonical pair labeler: it gives each unordered pair of
// 3N-basis indices one dense id. Compression builds the matching
// permutation compression matrix C with C^T C = I.
package basis
