// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color produces ANSI colored strings and maps console color names onto
// ANSI codes. Color output follows the NO_COLOR and FORCE_COLOR conventions.
package color
