package engine

// debugAssertions gates the integrity checks named in spec §7/§8
// (bitboard/piece-list/hash agreement, king-on-its-square). They are
// deliberately a compile-time constant rather than a runtime flag so the
// `if debugAssertions` branches are dead-code-eliminated in a release
// build and can never influence control flow there, matching the
// "debug-only, MUST NOT affect release control flow" requirement.
const debugAssertions = false
