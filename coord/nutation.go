package coord

// Nutation uses the 30 largest IAU 2000A luni-solar terms (~1 arcsec
// precision), since other error sources in the TEME/ITRF chain — GMST's own
// ~0.3 arcsec/century drift, SGP4's own model error — dominate the overall
// accuracy budget well before the remaining 1365 luni-solar/planetary terms
// would matter.
