package domain

// Money is an amount in integer minor units of the single business currency.
// All pricing and settlement arithmetic stays in integer space; rounding is
// explicit at the call sites that need it.
type Money int64
