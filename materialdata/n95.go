package materialdata

// Complex equivalent permittivity of TDK N95, measured at three anchor
// frequencies.
const (
	n95EPhi100kHz = 37
	n95ER100kHz   = 1.3969e+05

	n95EPhi200kHz = 30
	n95ER200kHz   = 1.1663e+05

	n95EPhi300kHz = 27
	n95ER300kHz   = 1.0158e+05
)

// N95 builds the analytical core data of TDK N95 from the measured curves
// at 200 kHz and 300 kHz and the permittivity anchors at 100/200/300 kHz.
func N95() (*AnalyticalCoreData, error) {
	return NewAnalyticalCoreData(
		200000, 300000,
		n95B200kHz, n95MuImag200kHz,
		n95B300kHz, n95MuImag300kHz,
		[]LossAngleAnchor{
			{Frequency: 100000, Amplitude: n95ER100kHz, PhiDeg: n95EPhi100kHz},
			{Frequency: 200000, Amplitude: n95ER200kHz, PhiDeg: n95EPhi200kHz},
			{Frequency: 300000, Amplitude: n95ER300kHz, PhiDeg: n95EPhi300kHz},
		})
}
