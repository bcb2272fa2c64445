package telegram

import "fmt"

// Lesson titles for the 7-day program.
var lessonTitles = [...]string{
	1: "Money Flow Basics",
	2: "Money Leaks",
	3: "System Evaluation",
	4: "Income/Cost Mapping",
	5: "Survival vs Growth",
	6: "Action Planning",
	7: "Integration",
}

var lessonBodies = [...]string{
	1: `💡 ថ្ងៃនេះយើងរៀនពីមូលដ្ឋាននៃលំហូរលុយ។

លុយចូល - លុយចេញ = លំហូរលុយរបស់អ្នក។ មុននឹងកែលម្អអ្វីមួយ អ្នកត្រូវដឹងថាលុយរបស់អ្នកមកពីណា ហើយទៅណា។

📝 កិច្ចការថ្ងៃនេះ:
1. សរសេរប្រភពចំណូលទាំងអស់របស់អ្នក
2. សរសេរចំណាយធំៗ ៥ យ៉ាងចុងក្រោយ
3. គណនាលំហូរលុយប្រចាំខែរបស់អ្នក`,
	2: `🔍 ថ្ងៃនេះយើងរកកន្លែងលុយលេច។

លុយលេចគឺចំណាយតូចៗដែលកើតឡើងម្តងហើយម្តងទៀត ដោយអ្នកមិនបានកត់សម្គាល់។

📝 កិច្ចការថ្ងៃនេះ:
1. ពិនិត្យចំណាយ ៣០ ថ្ងៃចុងក្រោយ
2. រកចំណាយដែលអាចកាត់បន្ថយបាន ៣ យ៉ាង
3. គណនាថាតើអ្នកសន្សំបានប៉ុន្មានក្នុងមួយខែ`,
	3: `⚙️ ថ្ងៃនេះយើងវាយតម្លៃប្រព័ន្ធគ្រប់គ្រងលុយបច្ចុប្បន្ន។

តើអ្នកដឹងទេថាលុយរបស់អ្នកទៅណាជារៀងរាល់ខែ? ប្រព័ន្ធល្អធ្វើការដោយស្វ័យប្រវត្តិ។

📝 កិច្ចការថ្ងៃនេះ:
1. វាយតម្លៃរបៀបតាមដានចំណាយបច្ចុប្បន្ន
2. កំណត់ចំណុចខ្សោយក្នុងប្រព័ន្ធ
3. ជ្រើសរើសវិធីតាមដានថ្មីមួយ`,
	4: `🗺️ ថ្ងៃនេះយើងគូសផែនទីចំណូលនិងចំណាយ។

បែងចែកចំណាយជាក្រុម: ចាំបាច់ ចង់បាន និងសន្សំ/វិនិយោគ។

📝 កិច្ចការថ្ងៃនេះ:
1. បែងចែកចំណាយខែមុនជា ៣ ក្រុម
2. គណនាភាគរយនីមួយៗ
3. ប្រៀបធៀបជាមួយគោលដៅ 50/30/20`,
	5: `🌱 ថ្ងៃនេះយើងរៀនពីភាពខុសគ្នារវាងការរស់រាននិងការរីកចម្រើន។

ចំណាយរស់រានរក្សាជីវិតបច្ចុប្បន្ន។ ចំណាយរីកចម្រើនបង្កើតអនាគតល្អជាង។

📝 កិច្ចការថ្ងៃនេះ:
1. កំណត់ចំណាយរីកចម្រើនបច្ចុប្បន្នរបស់អ្នក
2. រកកន្លែងផ្លាស់ប្តូរពីរស់រានទៅរីកចម្រើន
3. កំណត់គោលដៅវិនិយោគលើខ្លួនឯង`,
	6: `📋 ថ្ងៃនេះយើងបង្កើតផែនការសកម្មភាព។

ចំណេះដឹងគ្មានសកម្មភាពគ្មានតម្លៃ។ ផែនការល្អត្រូវជាក់លាក់ វាស់វែងបាន និងមានកាលកំណត់។

📝 កិច្ចការថ្ងៃនេះ:
1. សរសេរគោលដៅហិរញ្ញវត្ថុ ៣ ខែ
2. បំបែកជាសកម្មភាពប្រចាំសប្តាហ៍
3. កំណត់ថ្ងៃពិនិត្យការរីកចម្រើន`,
	7: `🎓 ថ្ងៃចុងក្រោយ: បញ្ចូលអ្វីៗទាំងអស់ជាប្រព័ន្ធតែមួយ។

អបអរសាទរ! អ្នកបានបញ្ចប់ 7-Day Money Flow Reset™។ ឥឡូវរក្សាទម្លាប់ថ្មីនេះជារៀងរាល់ថ្ងៃ។

📝 កិច្ចការថ្ងៃនេះ:
1. សង្ខេបអ្វីដែលបានរៀនទាំង ៧ ថ្ងៃ
2. កំណត់ទម្លាប់ប្រចាំសប្តាហ៍ ៣ យ៉ាងដែលនឹងបន្ត
3. ចែករំលែកលទ្ធផលរបស់អ្នក`,
}

func lessonContent(day int) string {
	return fmt.Sprintf("📚 ថ្ងៃទី%d: %s\n\n%s", day, lessonTitles[day], lessonBodies[day])
}
