package diag

// Stage identifies which pipeline phase raised an Error.
type Stage string

const (
	StageLexical            Stage = "lexical"
	StageSyntactic          Stage = "syntactic"
	StageNameResolution     Stage = "name-resolution"
	StageType               Stage = "type"
	StageTranspilerInternal Stage = "transpiler-internal"
)
