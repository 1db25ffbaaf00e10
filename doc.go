/*
Package cow offers copy-on-write containers.

A copy-on-write container behaves like an ordinary mutable container to its holder.
Duplicating it is cheap: a duplicate shares all of its internal storage with the
original, and only the nodes along the path touched by a later write get copied.
Holders of duplicates never observe each other's modifications.

This is different from a persistent data structure, where every modification
returns a new value. Here a modification changes the container in place, but
leaves every clone taken earlier untouched.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cow
