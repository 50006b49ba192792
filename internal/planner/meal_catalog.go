package planner

type foodTemplate struct {
	name     string
	quantity float64
	unit     string
	calories float64
	protein  float64
	carbs    float64
	fat      float64
}

type mealTemplate struct {
	name     string
	calories float64
	protein  float64
	carbs    float64
	fat      float64
	foods    []foodTemplate
}

func food(name string, quantity float64, unit string, calories, protein, carbs, fat float64) foodTemplate {
	return foodTemplate{
		name:     name,
		quantity: quantity,
		unit:     unit,
		calories: calories,
		protein:  protein,
		carbs:    carbs,
		fat:      fat,
	}
}

// meal builds a template whose totals are the sums of its foods.
func meal(name string, foods ...foodTemplate) mealTemplate {
	mt := mealTemplate{name: name, foods: foods}
	for _, f := range foods {
		mt.calories += f.calories
		mt.protein += f.protein
		mt.carbs += f.carbs
		mt.fat += f.fat
	}
	return mt
}

// mealCatalog holds the meal variations per goal and meal type. The variation
// for a weekday is picked by day index modulo the number of variations.
var mealCatalog = map[Goal]map[MealType][]mealTemplate{
	GoalWeightLoss: {
		MealTypeBreakfast: {
			meal("Greek Yogurt Berry Bowl",
				food("Greek yogurt (non-fat)", 200, "g", 118, 20.6, 7.2, 0.8),
				food("Mixed berries", 100, "g", 50, 0.7, 12, 0.3),
				food("Chia seeds", 10, "g", 49, 1.7, 4.2, 3.1),
			),
			meal("Veggie Egg-White Omelette",
				food("Egg whites", 200, "g", 104, 21.8, 1.5, 0.4),
				food("Spinach", 60, "g", 14, 1.7, 2.2, 0.2),
				food("Whole-grain toast", 1, "slice", 80, 4, 14, 1),
			),
			meal("Overnight Oats",
				food("Rolled oats", 40, "g", 152, 5.3, 27, 2.6),
				food("Almond milk (unsweetened)", 200, "ml", 30, 1, 1.2, 2.4),
				food("Apple", 0.5, "piece", 48, 0.2, 12.5, 0.2),
			),
		},
		MealTypeLunch: {
			meal("Grilled Chicken Salad",
				food("Chicken breast", 150, "g", 248, 46.5, 0, 5.4),
				food("Mixed greens", 100, "g", 20, 1.5, 3.5, 0.2),
				food("Cherry tomatoes", 100, "g", 18, 0.9, 3.9, 0.2),
				food("Olive oil vinaigrette", 10, "ml", 80, 0, 0.5, 9),
			),
			meal("Turkey Lettuce Wraps",
				food("Lean ground turkey", 150, "g", 225, 30, 0, 11),
				food("Romaine lettuce", 80, "g", 14, 1, 2.6, 0.2),
				food("Brown rice", 80, "g", 89, 2, 18.4, 0.7),
			),
			meal("Lentil Vegetable Soup",
				food("Cooked lentils", 200, "g", 232, 18, 40, 0.8),
				food("Carrots", 80, "g", 33, 0.7, 7.7, 0.2),
				food("Celery", 50, "g", 8, 0.3, 1.5, 0.1),
			),
		},
		MealTypeDinner: {
			meal("Baked Salmon with Broccoli",
				food("Salmon fillet", 150, "g", 312, 30, 0, 20),
				food("Steamed broccoli", 150, "g", 53, 3.6, 10.5, 0.6),
				food("Lemon", 0.5, "piece", 8, 0.3, 2.7, 0.1),
			),
			meal("Shrimp Zucchini Noodles",
				food("Shrimp", 150, "g", 149, 35.7, 0, 0.5),
				food("Zucchini noodles", 200, "g", 34, 2.4, 6.2, 0.6),
				food("Marinara sauce", 100, "g", 50, 1.5, 8, 1.5),
			),
			meal("Chicken Stir-fry",
				food("Chicken breast", 120, "g", 198, 37.2, 0, 4.3),
				food("Mixed stir-fry vegetables", 200, "g", 70, 4, 14, 0.4),
				food("Soy sauce", 15, "ml", 8, 1.3, 0.8, 0),
			),
		},
		MealTypeSnack: {
			meal("Apple with Almond Butter",
				food("Apple", 1, "piece", 95, 0.5, 25, 0.3),
				food("Almond butter", 10, "g", 61, 2.1, 1.9, 5.6),
			),
			meal("Cottage Cheese Cup",
				food("Low-fat cottage cheese", 150, "g", 108, 18.6, 4.1, 1.5),
				food("Cucumber slices", 80, "g", 12, 0.5, 2.9, 0.1),
			),
			meal("Veggies and Hummus",
				food("Carrot sticks", 100, "g", 41, 0.9, 9.6, 0.2),
				food("Hummus", 40, "g", 66, 3.2, 5.7, 3.8),
			),
		},
	},
	GoalMuscleGain: {
		MealTypeBreakfast: {
			meal("Protein Pancakes",
				food("Oat flour", 60, "g", 230, 8.4, 39, 4.2),
				food("Whey protein", 30, "g", 120, 24, 3, 1.5),
				food("Whole eggs", 2, "piece", 144, 12.6, 0.8, 9.6),
				food("Maple syrup", 20, "ml", 52, 0, 13.4, 0),
			),
			meal("Scrambled Eggs and Toast",
				food("Whole eggs", 3, "piece", 216, 18.9, 1.2, 14.4),
				food("Whole-grain toast", 2, "slice", 160, 8, 28, 2),
				food("Avocado", 50, "g", 80, 1, 4.3, 7.3),
			),
			meal("Peanut Butter Banana Oats",
				food("Rolled oats", 80, "g", 304, 10.6, 54, 5.2),
				food("Banana", 1, "piece", 105, 1.3, 27, 0.4),
				food("Peanut butter", 30, "g", 177, 7.5, 6, 15),
				food("Whole milk", 200, "ml", 122, 6.4, 9.6, 6.6),
			),
		},
		MealTypeLunch: {
			meal("Beef and Rice Bowl",
				food("Lean beef", 180, "g", 389, 46.8, 0, 21.6),
				food("White rice", 200, "g", 260, 5.4, 57, 0.6),
				food("Black beans", 100, "g", 132, 8.9, 23.7, 0.5),
			),
			meal("Chicken Pasta",
				food("Whole-wheat pasta", 120, "g", 419, 17.6, 82, 3.5),
				food("Chicken breast", 180, "g", 297, 55.8, 0, 6.5),
				food("Parmesan", 20, "g", 78, 7.2, 0.7, 5.2),
			),
			meal("Tuna Quinoa Salad",
				food("Tuna (in water)", 150, "g", 174, 38.4, 0, 1.2),
				food("Cooked quinoa", 200, "g", 240, 8.8, 42.6, 3.8),
				food("Olive oil", 15, "ml", 119, 0, 0, 13.5),
				food("Chickpeas", 100, "g", 164, 8.9, 27.4, 2.6),
			),
		},
		MealTypeDinner: {
			meal("Steak with Sweet Potato",
				food("Sirloin steak", 200, "g", 414, 54, 0, 21),
				food("Sweet potato", 250, "g", 215, 4, 50, 0.3),
				food("Green beans", 100, "g", 31, 1.8, 7, 0.2),
			),
			meal("Salmon Rice Plate",
				food("Salmon fillet", 180, "g", 374, 36, 0, 24),
				food("Brown rice", 200, "g", 222, 5.2, 46, 1.8),
				food("Asparagus", 100, "g", 20, 2.2, 3.9, 0.1),
			),
			meal("Turkey Chili",
				food("Lean ground turkey", 200, "g", 300, 40, 0, 14.7),
				food("Kidney beans", 150, "g", 191, 13, 34, 0.8),
				food("Crushed tomatoes", 150, "g", 48, 2.4, 10.5, 0.3),
				food("Cheddar", 20, "g", 80, 5, 0.3, 6.6),
			),
		},
		MealTypeSnack: {
			meal("Protein Shake",
				food("Whey protein", 30, "g", 120, 24, 3, 1.5),
				food("Whole milk", 250, "ml", 153, 8, 12, 8.3),
				food("Banana", 1, "piece", 105, 1.3, 27, 0.4),
			),
			meal("Trail Mix",
				food("Mixed nuts", 40, "g", 244, 7.6, 8.4, 21.6),
				food("Raisins", 30, "g", 90, 0.9, 23.8, 0.1),
			),
			meal("Greek Yogurt and Granola",
				food("Greek yogurt (2%)", 200, "g", 146, 19.8, 7.8, 3.8),
				food("Granola", 50, "g", 235, 5.3, 32, 10),
			),
		},
	},
	GoalMaintenance: {
		MealTypeBreakfast: {
			meal("Avocado Toast with Egg",
				food("Whole-grain toast", 2, "slice", 160, 8, 28, 2),
				food("Avocado", 70, "g", 112, 1.4, 6, 10.3),
				food("Poached egg", 1, "piece", 72, 6.3, 0.4, 4.8),
			),
			meal("Fruit and Nut Oatmeal",
				food("Rolled oats", 50, "g", 190, 6.6, 33.8, 3.3),
				food("Walnuts", 15, "g", 98, 2.3, 2.1, 9.8),
				food("Blueberries", 80, "g", 46, 0.6, 11.6, 0.3),
			),
			meal("Breakfast Smoothie",
				food("Banana", 1, "piece", 105, 1.3, 27, 0.4),
				food("Spinach", 30, "g", 7, 0.9, 1.1, 0.1),
				food("Greek yogurt (2%)", 150, "g", 110, 14.9, 5.9, 2.9),
				food("Almond milk (unsweetened)", 200, "ml", 30, 1, 1.2, 2.4),
			),
		},
		MealTypeLunch: {
			meal("Chicken Quinoa Bowl",
				food("Chicken breast", 130, "g", 215, 40.3, 0, 4.7),
				food("Cooked quinoa", 150, "g", 180, 6.6, 32, 2.9),
				food("Roasted vegetables", 150, "g", 90, 2.5, 15, 3),
			),
			meal("Mediterranean Wrap",
				food("Whole-wheat tortilla", 1, "piece", 130, 4, 22, 3.5),
				food("Falafel", 100, "g", 333, 13.3, 31.8, 17.8),
				food("Tzatziki", 40, "g", 40, 1.6, 1.8, 3),
			),
			meal("Turkey Sandwich",
				food("Whole-grain bread", 2, "slice", 160, 8, 28, 2),
				food("Sliced turkey", 100, "g", 104, 17, 4, 2),
				food("Swiss cheese", 20, "g", 76, 5.4, 0.3, 5.9),
				food("Side salad", 100, "g", 20, 1.5, 3.5, 0.2),
			),
		},
		MealTypeDinner: {
			meal("Herb Chicken with Rice",
				food("Chicken thigh", 150, "g", 270, 37.5, 0, 12.9),
				food("Brown rice", 150, "g", 167, 3.9, 34.5, 1.4),
				food("Steamed carrots", 100, "g", 35, 0.8, 8.2, 0.2),
			),
			meal("Cod with Potatoes",
				food("Cod fillet", 180, "g", 185, 40.8, 0, 1.5),
				food("Baby potatoes", 200, "g", 154, 4, 35, 0.2),
				food("Olive oil", 10, "ml", 80, 0, 0, 9),
			),
			meal("Veggie Tofu Curry",
				food("Firm tofu", 150, "g", 216, 23.6, 5.2, 13),
				food("Coconut curry sauce", 100, "g", 120, 1.5, 8, 9.5),
				food("Basmati rice", 150, "g", 195, 4, 43, 0.5),
			),
		},
		MealTypeSnack: {
			meal("Banana with Peanut Butter",
				food("Banana", 1, "piece", 105, 1.3, 27, 0.4),
				food("Peanut butter", 15, "g", 88, 3.8, 3, 7.5),
			),
			meal("Cheese and Crackers",
				food("Whole-grain crackers", 30, "g", 130, 3, 20, 4.5),
				food("Cheddar", 20, "g", 80, 5, 0.3, 6.6),
			),
			meal("Yogurt Parfait",
				food("Greek yogurt (2%)", 150, "g", 110, 14.9, 5.9, 2.9),
				food("Strawberries", 100, "g", 32, 0.7, 7.7, 0.3),
				food("Honey", 10, "g", 30, 0, 8.2, 0),
			),
		},
	},
}

// MealVariations returns how many templates exist for the goal and meal type.
func MealVariations(goal Goal, mealType MealType) int {
	return len(mealCatalog[goal][mealType])
}
