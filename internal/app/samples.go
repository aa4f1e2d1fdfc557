package app

// Sample is a named basket used for demonstrations.
type Sample struct {
	Name  string
	Input string
}

// SampleInputs returns the three reference baskets.
func SampleInputs() []Sample {
	return []Sample{
		{
			Name: "Input 1",
			Input: "2 book at 12.49\n" +
				"1 music CD at 14.99\n" +
				"1 chocolate bar at 0.85",
		},
		{
			Name: "Input 2",
			Input: "1 imported box of chocolates at 10.00\n" +
				"1 imported bottle of perfume at 47.50",
		},
		{
			Name: "Input 3",
			Input: "1 imported bottle of perfume at 27.99\n" +
				"1 bottle of perfume at 18.99\n" +
				"1 packet of headache pills at 9.75\n" +
				"3 imported boxes of chocolates at 11.25",
		},
	}
}
