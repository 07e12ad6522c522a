package entity

// Action is an intent an entity returns from Update. Actions are the only
// way entities mutate the world's registry: the world collects every action
// from a pass and commits them after iteration finishes, so an update can
// never invalidate the pass that produced it.
//
// Within a batch removals always apply before spawns, so returning
// [Remove{X}, Spawn{Y tagged X}] replaces X atomically: the world never
// transiently holds zero or two entities with that tag.
type Action interface {
	isAction()
}

// Spawn registers new entities. Order is preserved; spawned entities become
// eligible for updates starting the next pass.
type Spawn struct {
	Entities []Entity
}

func (Spawn) isAction() {}

// Remove deletes every registered entity whose tag matches one of Tags,
// across all capability partitions. Unknown tags are a silent no-op.
type Remove struct {
	Tags []string
}

func (Remove) isAction() {}
