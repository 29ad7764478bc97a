package strata

import "fmt"

// Programmer errors (spec §7.1) panic with a static, named message rather
// than returning an error: there is no recovery, and the violated
// invariant is a bug in the calling system, not a runtime condition.

func panicDuplicateComponent(id ComponentID) {
	panic(fmt.Sprintf("strata: duplicate component type %d in entity creation", id))
}

func panicDuplicateLocalWrite() {
	panic("strata: system declares the same component for local write more than once")
}

func panicMissingPatternComponent(id ComponentID) {
	panic(fmt.Sprintf("strata: pattern references component %d absent from the targeted archetype", id))
}

func panicInvalidGet() {
	panic("strata: invalid get: component not in declared global read/write set, or aliases the currently-visited row's local write set")
}

func panicInvalidGetMut() {
	panic("strata: invalid get_mut: component not in declared global write set, or aliases the currently-visited row")
}

func panicParallelAliasing() {
	panic("strata: parallel run would alias a global read against a local write: global_read ∩ local_write must be empty")
}

func panicPipelineAliasing() {
	panic("strata: pipeline systems alias each other: local writes must be disjoint, and no system may globally read another's local write")
}

func panicUnregisteredMessage() {
	panic("strata: system declares a Send message type that is not registered on this registry's message bus")
}
