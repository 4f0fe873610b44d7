// Package constraint implements the impulse-based constraints: Collision,
// Wall, Walls, Distance, Snap, Curve, and Surface.
//
// All constraints share one solve model. Given a scalar violation C and its
// direction J (the constraint Jacobian), the corrective impulse magnitude is
//
//	lambda = -(J·dv + beta/dt·C) / (gamma + dt·|J|²/m_eff)
//
// where dv is the current relative velocity and m_eff the effective mass of
// the pair (1/(w1+w2)) or of the single anchored body. The soft-constraint
// coefficients gamma and beta derive from a configured oscillation period
// and damping ratio; period zero means rigid (gamma=0, beta=1). The impulse
// J·dt·lambda is applied positively to the target and negatively to the
// source, conserving momentum for body pairs.
//
// Collision and Wall use hard contact instead of the soft coefficients:
// gamma is zero and positional error feeds back through Baumgarte drift
// with a slop tolerance. Both emit pre/collision/post events through an
// embedded [event.Bus].
//
// Constraints never error during a solve. Degenerate configurations, such
// as two immovable bodies or a zero-length separation, skip the affected
// pair or fall back to a fixed direction instead of producing NaN.
package constraint
