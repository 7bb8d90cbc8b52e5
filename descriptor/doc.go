// Package descriptor models the JVM's field descriptor grammar.
//
// Each of the eight primitive kinds maps to a fixed one-character type tag
// (Z, B, C, S, I, J, F, D); object types use the open-ended L<class>; form
// and arrays prefix any descriptor with '['. The package is pure and
// stateless: it only translates between kinds, tags, and descriptor strings.
package descriptor
