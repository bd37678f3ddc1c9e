package catalog

// defaultExperiences is the built-in catalog.
var defaultExperiences = []Experience{
	{
		ID:              "1",
		Name:            "Kayaking in Udupi",
		Description:     "Enjoy a scenic kayaking experience through the beautiful backwaters and mangrove forests with expert guides.",
		FullDescription: "Paddle through serene backwaters surrounded by lush mangrove forests in Udupi. Suitable for both beginners and experienced kayakers, with expert guides sharing insights about the local ecosystem.",
		Price:           999,
		Location:        "Udupi, Karnataka",
		ImageURL:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=500",
		Rating:          4.5,
	},
	{
		ID:              "2",
		Name:            "Nandi Hills Sunrise",
		Description:     "Experience breathtaking sunrise views from Nandi Hills with guided early morning trekking and photography.",
		FullDescription: "Start before dawn and trek up Nandi Hills to watch the sun rise over the clouds. Includes a photography walk with a local guide.",
		Price:           799,
		Location:        "Bangalore, Karnataka",
		ImageURL:        "https://www.treksandtrails.org/blog/wp-content/uploads/2020/08/Nandi-Hills.jpg",
		Rating:          4.3,
	},
	{
		ID:              "3",
		Name:            "Coffee Trail Coorg",
		Description:     "Walk through lush coffee plantations, learn about coffee processing and enjoy fresh brews.",
		FullDescription: "Explore working coffee estates in Coorg, follow the bean from plant to cup and finish with a tasting session.",
		Price:           1299,
		Location:        "Coorg, Karnataka",
		ImageURL:        "https://images.unsplash.com/photo-1447933601403-0c6688de566e?w=500",
		Rating:          4.7,
	},
	{
		ID:              "4",
		Name:            "Boat Cruise Sunderbans",
		Description:     "Cruise through the largest mangrove forest in the world and spot wildlife in their natural habitat.",
		FullDescription: "A guided boat cruise through the Sunderbans delta with chances to spot birds, crocodiles and, if lucky, the Royal Bengal tiger.",
		Price:           1499,
		Location:        "Sunderbans, West Bengal",
		ImageURL:        "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=500",
		Rating:          4.6,
	},
	{
		ID:              "5",
		Name:            "Bungee Jumping Manali",
		Description:     "Experience the thrill of bungee jumping from one of India's highest towers with full safety gear and professional guidance.",
		FullDescription: "Jump from one of North India's highest jump points with state-of-the-art safety equipment, experienced instructors and a full safety briefing.",
		Price:           1599,
		Location:        "Manali, Himachal Pradesh",
		ImageURL:        "https://i1.wp.com/www.bms.co.in/wp-content/uploads/2014/07/bungee-jumping.jpeg",
		Rating:          4.8,
	},
}

// defaultSchedule is offered for every experience in the built-in catalog.
var defaultSchedule = []Slot{
	{Date: "2024-11-06", Time: "01:00 pm", Capacity: 8},
	{Date: "2024-11-06", Time: "11:00 am", Capacity: 6},
	{Date: "2024-11-07", Time: "01:00 pm", Capacity: 10},
	{Date: "2024-11-07", Time: "11:00 am", Capacity: 4},
	{Date: "2024-11-08", Time: "01:00 pm", Capacity: 12},
	{Date: "2024-11-08", Time: "11:00 am", Capacity: 7},
}

// DefaultRepository returns a repository over the built-in catalog.
func DefaultRepository() Repository {
	slots := make(map[string][]Slot, len(defaultExperiences))
	for _, e := range defaultExperiences {
		slots[e.ID] = defaultSchedule
	}
	return NewStaticRepository(defaultExperiences, slots)
}
