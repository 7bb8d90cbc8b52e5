// Package lookup acquires the runtime's trusted lookup capability.
//
// The trusted lookup is a singleton access-control token held by the runtime
// itself. Acquiring it is the one operation in this library with a graceful
// failure policy: runtimes legitimately differ in whether the privileged
// class and field exist, so failures surface as structured errors rather
// than aborting the process. The path is self-contained and does not depend
// on the bridge package's field resolver.
package lookup
